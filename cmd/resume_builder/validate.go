package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate ResumeData JSON against the resume schema",
	Long: `Validate a ResumeData JSON file against the embedded resume schema, or against --schema.

With --strict the resume must also be complete enough to export: name, email, phone, LinkedIn,
location and summary present, and a valid email and phone number.`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateSchema string
	validateStrict bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to ResumeData JSON (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON schema (defaults to the embedded resume schema)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also require the fields needed to export")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		content, readErr := os.ReadFile(validateInput)
		if readErr != nil {
			return fmt.Errorf("failed to read resume file: %w", readErr)
		}
		err = schemas.ValidateResumeJSON(content)
	}

	printer := observability.NewPrinter(os.Stdout)
	var validationErr *schemas.ValidationError
	switch {
	case errors.As(err, &validationErr):
		printer.PrintSchemaErrors(validationErr.Errors)
		return fmt.Errorf("validation found %d violation(s)", len(validationErr.Errors))
	case err != nil:
		return err
	}

	if validateStrict {
		resume, err := readResume(validateInput)
		if err != nil {
			return err
		}
		if err := resume.Validate(); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				errs := make([]schemas.FieldError, 0, len(fieldErrs))
				for _, fe := range fieldErrs {
					errs = append(errs, schemas.FieldError{
						Field:   fe.Namespace(),
						Message: fmt.Sprintf("failed %q check", fe.Tag()),
					})
				}
				printer.PrintSchemaErrors(errs)
				return fmt.Errorf("validation found %d violation(s)", len(errs))
			}
			return err
		}
	}

	printer.PrintSchemaErrors(nil)
	return nil
}
