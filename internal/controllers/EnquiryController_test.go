package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devstats/internal/models"
	"devstats/internal/testutil"
)

func postEnquiry(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitEnquiry_Created(t *testing.T) {
	store := &testutil.MockEnquiryStore{}
	ec := NewEnquiryController(&testutil.MockLogger{}, store)

	rr := httptest.NewRecorder()
	ec.SubmitEnquiry(rr, postEnquiry(`{"name":"Ann","email":"a@x.io","subject":"Hi","message":"Hello"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Enquiry saved successfully."}`, rr.Body.String())
	require.Len(t, store.Inputs, 1)
	assert.Equal(t, models.EnquiryInput{Name: "Ann", Email: "a@x.io", Subject: "Hi", Message: "Hello"}, store.Inputs[0])
}

func TestSubmitEnquiry_ValidationError(t *testing.T) {
	store := &testutil.MockEnquiryStore{AppendErr: &models.ValidationError{Field: "subject", Reason: "is required"}}
	ec := NewEnquiryController(&testutil.MockLogger{}, store)

	rr := httptest.NewRecorder()
	ec.SubmitEnquiry(rr, postEnquiry(`{"name":"Ann","email":"a@x.io","message":"Hello"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp messageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "All fields are required.", resp.Message)
	assert.Contains(t, resp.Detail, "subject")
}

func TestSubmitEnquiry_InvalidJSON(t *testing.T) {
	store := &testutil.MockEnquiryStore{}
	ec := NewEnquiryController(&testutil.MockLogger{}, store)

	rr := httptest.NewRecorder()
	ec.SubmitEnquiry(rr, postEnquiry(`{"name":`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.Inputs)
}

func TestSubmitEnquiry_BodyTooLarge(t *testing.T) {
	store := &testutil.MockEnquiryStore{}
	ec := NewEnquiryController(&testutil.MockLogger{}, store)

	huge := `{"name":"` + strings.Repeat("a", maxRequestBodySize+1) + `"}`
	rr := httptest.NewRecorder()
	ec.SubmitEnquiry(rr, postEnquiry(huge))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.Inputs)
}

func TestSubmitEnquiry_StoreFailure(t *testing.T) {
	logger := &testutil.MockLogger{}
	store := &testutil.MockEnquiryStore{AppendErr: errors.New("disk full")}
	ec := NewEnquiryController(logger, store)

	rr := httptest.NewRecorder()
	ec.SubmitEnquiry(rr, postEnquiry(`{"name":"Ann","email":"a@x.io","subject":"Hi","message":"Hello"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp messageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Unable to save enquiry.", resp.Message)
	assert.NotEmpty(t, logger.Logs)
}
