package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"devstats/internal/models"
	"devstats/internal/providers"
	"devstats/internal/storage/interfaces"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type EnquiryController struct {
	logger providers.Logger
	store  interfaces.EnquiryStoreInterface
}

func NewEnquiryController(logger providers.Logger, store interfaces.EnquiryStoreInterface) *EnquiryController {
	return &EnquiryController{
		logger: logger,
		store:  store,
	}
}

func (ec *EnquiryController) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.EnquiryInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.", "")
		return
	}

	_, err := ec.store.Append(payload)
	if errors.Is(err, models.ErrValidation) {
		writeMessage(w, http.StatusBadRequest, "All fields are required.", err.Error())
		return
	}
	if err != nil {
		ec.logger.Errorf(providers.TypePost, "Enquiry not saved: %s", err)
		writeMessage(w, http.StatusInternalServerError, "Unable to save enquiry.", "")
		return
	}

	writeMessage(w, http.StatusCreated, "Enquiry saved successfully.", "")
}
