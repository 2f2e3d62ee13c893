package certificates

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func testAsset(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	writeTestPNG(t, path, w, h)
	return path
}

func referenceFixture(t *testing.T) ReferenceData {
	t.Helper()
	dir := t.TempDir()
	return ReferenceData{
		Ministry:        "МИНИСТЕРСТВО ОБРАЗОВАНИЯ И НАУКИ СТРАНЫ",
		UniversityName:  "Университет Silk Road Innovations",
		FacultyName:     "Факультет информационных технологий",
		DirectionNumber: "0000000",
		DirectionName:   "Компьютерные науки",
		StudentName:     "Иванов Иван Иванович",
		GroupName:       "КИ-21-01",
		CourseNum:       3,
		StudyType:       "очная",
		Level:           "бакалавр",
		CertificateNum:  "1-1111-11111111-1",
		IssueDate:       "17.01.2023",

		DeanSignaturePath:      testAsset(t, dir, "dean.png", 160, 80),
		SecretarySignaturePath: testAsset(t, dir, "secretary.png", 160, 80),
		SealImagePath:          testAsset(t, dir, "seal.png", 200, 200),
	}
}

func studyStatusFixture(t *testing.T) StudyStatusData {
	t.Helper()
	dir := t.TempDir()
	return StudyStatusData{
		Ministry:       "МИНИСТЕРСТВО ОБРАЗОВАНИЯ И НАУКИ СТРАНЫ",
		UniversityName: "Университет Silk Road Innovations",
		ReferenceText:  "Настоящая справка выдана Ивановой Анне Сергеевне в том, что она действительно обучается в университете.",
		DurationYears:  4,
		Destination:    "Посольство",
		Semesters: []SemesterEntry{
			{Name: "Осенний семестр 2022/2023", Start: "01.09.2022", End: "28.12.2022"},
			{Name: "Весенний семестр 2022/2023", Start: "16.01.2023", End: "31.05.2023"},
			{Name: "Осенний семестр 2023/2024", Start: "01.09.2023", End: "27.12.2023"},
		},
		CertificateNum: "2-2222-22222222-2",
		ExecutorName:   "Петрова П. П.",
		ExecutionDate:  "20.01.2023",
		QRPayload:      "QR443323580",

		AuthoritySignaturePath: testAsset(t, dir, "authority.png", 160, 80),
		SealImagePath:          testAsset(t, dir, "seal.png", 200, 200),
	}
}

func draftBoardFixture(t *testing.T) DraftBoardData {
	t.Helper()
	dir := t.TempDir()
	return DraftBoardData{
		UniversityName: "Университет Silk Road Innovations",
		FacultyName:    "Факультет информационных технологий",
		StudentName:    "Каримов Аслиддин Баходирович",
		CourseNum:      2,
		StudyType:      "очная",
		CertificateNum: "3-3333-33333333-3",
		IssueDate:      "18.01.2023",

		RectorSignaturePath:    testAsset(t, dir, "rector.png", 160, 80),
		DeanSignaturePath:      testAsset(t, dir, "dean.png", 160, 80),
		RegistrarSignaturePath: testAsset(t, dir, "registrar.png", 160, 80),
		SealImagePath:          testAsset(t, dir, "seal.png", 200, 200),
	}
}
