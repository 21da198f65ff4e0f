package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"devstats/internal/models"
	"devstats/internal/providers"
	"devstats/internal/storage/interfaces"
	"devstats/internal/structures"
)

const (
	SheetName = "Enquiries"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// EnquiryStore keeps enquiries in a single workbook. Every Append reads the
// whole Enquiries sheet, adds one row and rewrites the sheet, so two
// concurrent appends may lose one of the writes. Wrap it in
// SerializedEnquiryStore when more than one goroutine can append.
type EnquiryStore struct {
	filePath string
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

type sheetContent struct {
	header []string
	rows   []map[string]string
	// height is the number of rows physically present in the sheet
	height int
}

func NewEnquiryStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) *EnquiryStore {
	return &EnquiryStore{
		filePath: conf.Enquiries.FilePath,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *EnquiryStore) Append(input models.EnquiryInput) (*models.EnquiryRecord, error) {
	if err := validateInput(input); err != nil {
		s.metrics.IncEnquiriesTotal("invalid")
		return nil, err
	}

	record := &models.EnquiryRecord{
		Timestamp: s.now().UTC().Format(timestampLayout),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
	}

	start := time.Now()
	count, err := s.appendRecord(record)
	if err != nil {
		s.metrics.IncEnquiriesTotal("failed")
		s.logger.Errorf(providers.TypePost, "Unable to store enquiry in %s: %s", s.filePath, err)
		return nil, err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	s.metrics.IncEnquiriesTotal("saved")
	s.metrics.SetEnquiryRows(count)
	s.logger.Infof(providers.TypePost, "Enquiry from %s stored, %d rows in %s", record.Email, count, s.filePath)

	return record, nil
}

// Count returns the number of stored enquiries. A missing file or sheet
// holds zero rows.
func (s *EnquiryStore) Count() (int, error) {
	f, err := s.open()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	content, err := readSheet(f)
	if err != nil {
		return 0, err
	}
	return len(content.rows), nil
}

func (s *EnquiryStore) appendRecord(record *models.EnquiryRecord) (int, error) {
	f, err := s.open()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	content, err := readSheet(f)
	if err != nil {
		return 0, err
	}
	content.rows = append(content.rows, record.Values())
	content.header = mergeHeader(content.header, models.EnquiryColumns)

	if err = writeSheet(f, content); err != nil {
		return 0, err
	}
	if err = s.save(f); err != nil {
		return 0, err
	}
	return len(content.rows), nil
}

// open returns the existing workbook, or a new one with only the
// Enquiries sheet when the file does not exist yet.
func (s *EnquiryStore) open() (*excelize.File, error) {
	_, err := os.Stat(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return newWorkbook()
	}
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to open enquiry file: %w", err)
	}
	return f, nil
}

func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	idx, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(idx)
	if defaultSheet != "" && defaultSheet != SheetName {
		if err = f.DeleteSheet(defaultSheet); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// save writes to a temporary file and renames it over the original so a
// crash mid-write never leaves a truncated workbook behind.
func (s *EnquiryStore) save(f *excelize.File) error {
	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpFile := s.filePath + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if err = f.Write(file); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.filePath)
}

func readSheet(f *excelize.File) (*sheetContent, error) {
	content := &sheetContent{}
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return content, nil
	}

	raw, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s sheet: %w", SheetName, err)
	}
	content.height = len(raw)
	if len(raw) == 0 {
		return content, nil
	}

	content.header = raw[0]
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(content.header))
		blank := true
		for i, column := range content.header {
			if column == "" || i >= len(cells) {
				continue
			}
			row[column] = cells[i]
			if cells[i] != "" {
				blank = false
			}
		}
		if !blank {
			content.rows = append(content.rows, row)
		}
	}
	return content, nil
}

// writeSheet replaces the whole Enquiries sheet with header and rows,
// creating the sheet when the workbook lacks it.
func writeSheet(f *excelize.File, content *sheetContent) error {
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err = f.NewSheet(SheetName); err != nil {
			return err
		}
	}

	if err = writeRow(f, 1, content.header); err != nil {
		return err
	}
	for i, row := range content.rows {
		values := make([]string, len(content.header))
		for j, column := range content.header {
			values[j] = row[column]
		}
		if err = writeRow(f, i+2, values); err != nil {
			return err
		}
	}

	// rows left over from skipped blank lines
	for r := content.height; r > len(content.rows)+1; r-- {
		if err = f.RemoveRow(SheetName, r); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &cells)
}

// mergeHeader keeps the existing column order and appends any missing
// required columns.
func mergeHeader(existing, required []string) []string {
	header := append([]string(nil), existing...)
	for _, column := range required {
		found := false
		for _, h := range header {
			if h == column {
				found = true
				break
			}
		}
		if !found {
			header = append(header, column)
		}
	}
	return header
}

// validateInput reports the first empty field in column order. Whitespace
// counts as a value.
func validateInput(input models.EnquiryInput) error {
	if field := firstMissingField(input); field != "" {
		return &models.ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}

func firstMissingField(input models.EnquiryInput) string {
	fields := []struct{ name, value string }{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"message", input.Message},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// SerializedEnquiryStore funnels all appends through one lock so that the
// read-modify-write cycles of the wrapped store never overlap inside this
// process.
type SerializedEnquiryStore struct {
	opsMu sync.Mutex
	inner interfaces.EnquiryStoreInterface
}

func NewSerializedEnquiryStore(store *EnquiryStore) interfaces.EnquiryStoreInterface {
	return &SerializedEnquiryStore{inner: store}
}

func (s *SerializedEnquiryStore) Append(input models.EnquiryInput) (*models.EnquiryRecord, error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.inner.Append(input)
}

func (s *SerializedEnquiryStore) Count() (int, error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.inner.Count()
}
