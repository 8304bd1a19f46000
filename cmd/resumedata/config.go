package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default paths, relative to the working directory.
const (
	DefaultWorkbook = "cv_data.xlsx"
	DefaultOutput   = "data/resume.json"
)

type cmdConfig struct {
	Workbook  string `validate:"required,endswith=.xlsx"`
	Output    string `validate:"required,endswith=.json"`
	SheetsDir string
	Compact   bool
	Verbose   bool
}

func defaultConfig() *cmdConfig {
	return &cmdConfig{
		Workbook: DefaultWorkbook,
		Output:   DefaultOutput,
	}
}

func (c *cmdConfig) validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must end with %s", strings.ToLower(fe.Field()), fe.Param()))
		}
	}
	return fmt.Errorf("invalid arguments: %s", strings.Join(msgs, "; "))
}
