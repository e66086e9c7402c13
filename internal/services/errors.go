package services

import (
	"errors"
	"fmt"
)

const (
	MsgNoFile          = "No resume file uploaded."
	MsgInvalidFormat   = "Invalid file format. Please upload a PDF or TXT file."
	MsgUnreadableTXT   = "Error reading TXT file."
	MsgEmptyContent    = "Could not extract content from the file. File might be empty or unreadable."
	MsgModelLoadFailed = "A server error occurred: One or more machine learning models failed to load correctly. Please ensure the models are trained and saved in the 'models' directory."
)

// InputError is a user-facing, non-retryable rejection of the submitted document.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// ModelMissingError reports that a classification slot produced the model-error sentinel.
type ModelMissingError struct {
	Slot   string
	Result string
}

func (e *ModelMissingError) Error() string {
	return fmt.Sprintf("%s slot unavailable: %s", e.Slot, e.Result)
}

func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

func IsModelMissing(err error) bool {
	var modelErr *ModelMissingError
	return errors.As(err, &modelErr)
}

// UserMessage returns the message safe to show the person who uploaded the document.
func UserMessage(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	if IsModelMissing(err) {
		return MsgModelLoadFailed
	}
	return "An unexpected error occurred while analyzing the resume."
}
