package models

// EnquiryColumns is the column order of the enquiry sheet.
var EnquiryColumns = []string{"timestamp", "name", "email", "subject", "message"}

// EnquiryInput is the caller-supplied part of an enquiry.
type EnquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EnquiryRecord is a stored enquiry. Timestamp is assigned by the store.
type EnquiryRecord struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Values maps each EnquiryColumns name to the record value.
func (r *EnquiryRecord) Values() map[string]string {
	return map[string]string{
		"timestamp": r.Timestamp,
		"name":      r.Name,
		"email":     r.Email,
		"subject":   r.Subject,
		"message":   r.Message,
	}
}
