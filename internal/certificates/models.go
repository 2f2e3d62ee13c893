// Package certificates assembles and renders the fixed certificate
// templates from caller-supplied field bundles.
package certificates

import (
	"fmt"
	"strings"
)

// Variant selects one of the fixed certificate templates.
type Variant string

const (
	// VariantReference is the reference certificate carrying a Code 128
	// barcode of the certificate number.
	VariantReference Variant = "reference"
	// VariantStudyStatus is the study-status certificate with a QR code
	// and a per-semester period list.
	VariantStudyStatus Variant = "status"
	// VariantDraftBoard is the bilingual draft-board certificate laid out
	// through absolute-position overlays.
	VariantDraftBoard Variant = "draftboard"
)

// Bundle is the full caller-supplied data set for one generation call.
// A bundle is constructed once per document and read-only afterwards.
type Bundle interface {
	Variant() Variant
	Validate() error

	sections() []section
	overlays() []overlayImage
}

// FieldError represents one invalid or missing bundle field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BundleError collects every field problem found in a bundle. It is
// returned before any rendering work begins.
type BundleError struct {
	Variant Variant      `json:"variant"`
	Fields  []FieldError `json:"fields"`
}

func (e *BundleError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%s bundle invalid: %s", e.Variant, strings.Join(msgs, "; "))
}

// bundleCheck accumulates field errors during validation.
type bundleCheck struct {
	variant Variant
	fields  []FieldError
}

// addError adds an error to the check result
func (c *bundleCheck) addError(field, code, message string) {
	c.fields = append(c.fields, FieldError{Field: field, Code: code, Message: message})
}

func (c *bundleCheck) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.addError(field, "required", "value is required")
	}
}

func (c *bundleCheck) positive(field string, value int) {
	if value <= 0 {
		c.addError(field, "invalid", "value must be positive")
	}
}

func (c *bundleCheck) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &BundleError{Variant: c.variant, Fields: c.fields}
}

// ReferenceData is the field bundle for the reference certificate.
type ReferenceData struct {
	Ministry        string `json:"ministry"`
	UniversityName  string `json:"university_name"`
	FacultyName     string `json:"faculty_name"`
	DirectionNumber string `json:"direction_number"`
	DirectionName   string `json:"direction_name"`
	StudentName     string `json:"student_name"`
	GroupName       string `json:"group_name"`
	CourseNum       int    `json:"course_num"`
	StudyType       string `json:"study_type"`
	Level           string `json:"level"`
	CertificateNum  string `json:"certificate_num"`
	IssueDate       string `json:"issue_date"`

	DeanSignaturePath      string `json:"dean_signature_path"`
	SecretarySignaturePath string `json:"secretary_signature_path"`
	SealImagePath          string `json:"seal_image_path"`
}

// Variant identifies the template this bundle fills.
func (d ReferenceData) Variant() Variant { return VariantReference }

// Validate reports every missing or malformed field.
func (d ReferenceData) Validate() error {
	c := bundleCheck{variant: VariantReference}
	c.require("ministry", d.Ministry)
	c.require("university_name", d.UniversityName)
	c.require("faculty_name", d.FacultyName)
	c.require("direction_number", d.DirectionNumber)
	c.require("direction_name", d.DirectionName)
	c.require("student_name", d.StudentName)
	c.require("group_name", d.GroupName)
	c.positive("course_num", d.CourseNum)
	c.require("study_type", d.StudyType)
	c.require("level", d.Level)
	c.require("certificate_num", d.CertificateNum)
	c.require("issue_date", d.IssueDate)
	c.require("dean_signature_path", d.DeanSignaturePath)
	c.require("secretary_signature_path", d.SecretarySignaturePath)
	c.require("seal_image_path", d.SealImagePath)
	return c.err()
}

// SemesterEntry is one study period in the semester list; entries render
// in input order.
type SemesterEntry struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// StudyStatusData is the field bundle for the study-status certificate.
type StudyStatusData struct {
	Ministry       string          `json:"ministry"`
	UniversityName string          `json:"university_name"`
	ReferenceText  string          `json:"reference_text"`
	DurationYears  int             `json:"duration_years"`
	Destination    string          `json:"destination"`
	Semesters      []SemesterEntry `json:"semesters"`
	CertificateNum string          `json:"certificate_num"`
	ExecutorName   string          `json:"executor_name"`
	// ExecutionDate is when the certificate was drawn up; it is caller
	// supplied and not derived from any date inside ReferenceText.
	ExecutionDate string `json:"execution_date"`
	// QRPayload is the literal matrix-code content; it is not derived
	// from other fields.
	QRPayload string `json:"qr_payload"`

	AuthoritySignaturePath string `json:"authority_signature_path"`
	SealImagePath          string `json:"seal_image_path"`
}

func (d StudyStatusData) Variant() Variant { return VariantStudyStatus }

// Validate reports every missing or malformed field.
func (d StudyStatusData) Validate() error {
	c := bundleCheck{variant: VariantStudyStatus}
	c.require("ministry", d.Ministry)
	c.require("university_name", d.UniversityName)
	c.require("reference_text", d.ReferenceText)
	c.positive("duration_years", d.DurationYears)
	c.require("destination", d.Destination)
	if len(d.Semesters) == 0 {
		c.addError("semesters", "required", "at least one semester entry is required")
	}
	for i, s := range d.Semesters {
		c.require(fmt.Sprintf("semesters[%d].name", i), s.Name)
		c.require(fmt.Sprintf("semesters[%d].start", i), s.Start)
		c.require(fmt.Sprintf("semesters[%d].end", i), s.End)
	}
	c.require("certificate_num", d.CertificateNum)
	c.require("executor_name", d.ExecutorName)
	c.require("execution_date", d.ExecutionDate)
	c.require("qr_payload", d.QRPayload)
	c.require("authority_signature_path", d.AuthoritySignaturePath)
	c.require("seal_image_path", d.SealImagePath)
	return c.err()
}

// DraftBoardData is the field bundle for the draft-board certificate.
type DraftBoardData struct {
	UniversityName string `json:"university_name"`
	FacultyName    string `json:"faculty_name"`
	StudentName    string `json:"student_name"`
	CourseNum      int    `json:"course_num"`
	// StudyType is the Russian study-mode code; the Uzbek wording is
	// derived from it.
	StudyType      string `json:"study_type"`
	CertificateNum string `json:"certificate_num"`
	IssueDate      string `json:"issue_date"`

	RectorSignaturePath    string `json:"rector_signature_path"`
	DeanSignaturePath      string `json:"dean_signature_path"`
	RegistrarSignaturePath string `json:"registrar_signature_path"`
	SealImagePath          string `json:"seal_image_path"`
}

func (d DraftBoardData) Variant() Variant { return VariantDraftBoard }

// Validate reports every missing or malformed field.
func (d DraftBoardData) Validate() error {
	c := bundleCheck{variant: VariantDraftBoard}
	c.require("university_name", d.UniversityName)
	c.require("faculty_name", d.FacultyName)
	c.require("student_name", d.StudentName)
	c.positive("course_num", d.CourseNum)
	c.require("study_type", d.StudyType)
	c.require("certificate_num", d.CertificateNum)
	c.require("issue_date", d.IssueDate)
	c.require("rector_signature_path", d.RectorSignaturePath)
	c.require("dean_signature_path", d.DeanSignaturePath)
	c.require("registrar_signature_path", d.RegistrarSignaturePath)
	c.require("seal_image_path", d.SealImagePath)
	return c.err()
}
