package interfaces

import "devstats/internal/models"

type EnquiryStoreInterface interface {
	Append(input models.EnquiryInput) (*models.EnquiryRecord, error)
	Count() (int, error)
}
