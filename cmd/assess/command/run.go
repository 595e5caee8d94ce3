package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careloop/assessment/api"
	"github.com/careloop/assessment/assessments"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runParams = struct {
	LookbackDays int
}{}

var runCommand = &cobra.Command{
	Use:   "run {patientId...}",
	Args:  cobra.MinimumNArgs(1),
	Short: "Assess a batch of patients and print the results",
	Long:  "Assess a batch of patients and print one result per patient as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service assessments.Service, logger *zap.SugaredLogger) error {
			return runAssessment(service, logger, args)
		})
	},
}

func init() {
	runCommand.Flags().IntVar(&runParams.LookbackDays, "lookback-days", 0, "Reserved recency window in days (currently unused by classification)")
	rootCmd.AddCommand(runCommand)
}

func runAssessment(service assessments.Service, logger *zap.SugaredLogger, patientIds []string) error {
	requests := make([]assessments.Request, 0, len(patientIds))
	for _, patientId := range patientIds {
		request := assessments.Request{PatientId: patientId}
		if runParams.LookbackDays > 0 {
			lookback := runParams.LookbackDays
			request.LookbackDays = &lookback
		}
		requests = append(requests, request)
	}

	batchId := uuid.NewString()
	results, err := service.Assess(context.Background(), requests)
	if err != nil {
		return err
	}
	logger.Debugw("assessment completed", "batchId", batchId, "patients", len(results))

	encoded, err := json.MarshalIndent(api.NewAssessmentResponseDto(batchId, results), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
