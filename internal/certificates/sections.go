package certificates

import (
	"fmt"

	"certgen/pkg/markup"
	"certgen/pkg/plural"
)

// Text sections per variant. Every markup string the templates emit is
// built here, with field values escaped on the way in.

const (
	titleSize     = 12
	bodySize      = 12
	detailSize    = 10
	bilingualSize = 11
	textColor     = "black"
)

// Draft-board study-mode vocabulary: the Uzbek word derives from the
// Russian study-mode code; unknown codes fall back to the correspondence
// form rather than failing.
const (
	fullTimeCode = "очная"
	fullTimeUz   = "kunduzgi"
	partTimeUz   = "sirtqi"
)

func uzStudyMode(ruCode string) string {
	if ruCode == fullTimeCode {
		return fullTimeUz
	}
	return partTimeUz
}

// signatureMarkup renders a caption line with an inline signature image
// at the given display size.
func signatureMarkup(caption, imagePath string, width, height float64) string {
	return markup.Text(detailSize, textColor, caption+" "+markup.Img(imagePath, width, height))
}

func (d ReferenceData) titleSection() string {
	return markup.Text(titleSize, textColor,
		markup.Escape(d.Ministry),
		markup.Escape(d.UniversityName),
		markup.Escape(d.DirectionName),
	)
}

func (d ReferenceData) numberSection() string {
	return markup.Text(bodySize, textColor,
		"СПРАВКА № "+markup.Escape(d.CertificateNum),
		"",
		"Настоящая справка подтверждает то, что",
	)
}

func (d ReferenceData) studentSection() string {
	return markup.Text(bodySize, textColor,
		markup.Escape(d.StudentName),
		fmt.Sprintf("действительно является студентом (кой) %d-курса группы %s",
			d.CourseNum, markup.Escape(d.GroupName)),
		fmt.Sprintf("направлении: %s. %s (%s, %s)",
			markup.Escape(d.DirectionNumber), markup.Escape(d.DirectionName),
			markup.Escape(d.StudyType), markup.Escape(d.Level)),
		markup.Escape(d.FacultyName),
	)
}

func (d ReferenceData) issueSection() string {
	return markup.Text(detailSize, textColor,
		"Справка выдана по месту требования.",
		"",
		markup.Escape(d.IssueDate),
	)
}

func (d StudyStatusData) titleSection() string {
	return markup.Text(titleSize, textColor,
		markup.Escape(d.Ministry),
		markup.Escape(d.UniversityName),
	)
}

func (d StudyStatusData) headingSection() string {
	return markup.Text(bodySize, textColor, "СПРАВКА ОБ ОБУЧЕНИИ № "+markup.Escape(d.CertificateNum))
}

func (d StudyStatusData) referenceSection() string {
	return markup.Text(bodySize, textColor, markup.Escape(d.ReferenceText))
}

func (d StudyStatusData) periodSection() string {
	return markup.Text(bodySize, textColor,
		"Нормативный срок обучения: "+plural.Years(d.DurationYears))
}

func (d StudyStatusData) destinationSection() string {
	return markup.Text(detailSize, textColor,
		"Справка выдана для предъявления в: "+markup.Escape(d.Destination))
}

// semestersSection renders one bulleted line per entry, in input order.
func (d StudyStatusData) semestersSection() string {
	lines := make([]string, len(d.Semesters))
	for i, s := range d.Semesters {
		lines[i] = fmt.Sprintf("• %s: %s — %s",
			markup.Escape(s.Name), markup.Escape(s.Start), markup.Escape(s.End))
	}
	return markup.Text(detailSize, textColor, lines...)
}

func (d StudyStatusData) numberSection() string {
	return markup.Text(detailSize, textColor,
		"Уникальный номер справки: "+markup.Escape(d.CertificateNum))
}

func (d StudyStatusData) executorSection() string {
	return markup.Text(detailSize, textColor,
		"Исполнитель: "+markup.Escape(d.ExecutorName),
		"Дата составления: "+markup.Escape(d.ExecutionDate),
	)
}

// bodySection is the single bilingual paragraph of the draft-board
// certificate: Uzbek Latin first, the Russian equivalent after it.
func (d DraftBoardData) bodySection() string {
	uzHeading := "MA'LUMOTNOMA № " + markup.Escape(d.CertificateNum)
	uzBody := fmt.Sprintf(
		"Ushbu ma'lumotnoma %sga berilib, u haqiqatan ham %s %s fakultetining %d-kurs %s bo'lim talabasi ekanligini tasdiqlaydi. Ma'lumotnoma harbiy komissariatga taqdim etish uchun berildi. %s",
		markup.Escape(d.StudentName), markup.Escape(d.UniversityName),
		markup.Escape(d.FacultyName), d.CourseNum, uzStudyMode(d.StudyType),
		markup.Escape(d.IssueDate))
	ruHeading := "СПРАВКА № " + markup.Escape(d.CertificateNum)
	ruBody := fmt.Sprintf(
		"Настоящая справка выдана %s в том, что он(а) действительно является студентом %d-курса %s отделения факультета %s %s. Справка выдана для предъявления в военный комиссариат. %s",
		markup.Escape(d.StudentName), d.CourseNum, markup.Escape(d.StudyType),
		markup.Escape(d.FacultyName), markup.Escape(d.UniversityName),
		markup.Escape(d.IssueDate))
	return markup.Text(bilingualSize, textColor,
		uzHeading, "", uzBody, "", ruHeading, "", ruBody)
}
