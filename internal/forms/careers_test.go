package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightreel/formgate/internal/forms"
	"github.com/brightreel/formgate/pkg/validator"
)

func validCV() *forms.Attachment {
	return &forms.Attachment{
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Content:     []byte("%PDF-1.4 fake"),
	}
}

func validCareers() forms.CareersSubmission {
	return forms.CareersSubmission{
		Name:       "Sam Rivera",
		Email:      "sam@example.com",
		Experience: "1-3 Years",
		About:      "I have shipped brand campaigns for three agencies.",
		CV:         validCV(),
	}
}

func TestCareersSubmission_Sanitized(t *testing.T) {
	t.Parallel()

	t.Run("about keeps line breaks", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.About = "First paragraph.\n\nSecond paragraph."
		got := s.Sanitized()
		assert.Contains(t, got.About, "\n")
	})

	t.Run("single line fields are collapsed", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.Name = "Sam\r\nRivera"
		s.JobTitle = "Video\nEditor"
		got := s.Sanitized()
		assert.Equal(t, "Sam Rivera", got.Name)
		assert.Equal(t, "Video Editor", got.JobTitle)
	})

	t.Run("cv passes through unchanged", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		got := s.Sanitized()
		assert.Same(t, s.CV, got.CV)
	})
}

func TestCareersSubmission_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validCareers().Validate())
	})

	t.Run("valid with optional urls", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.Portfolio = "https://portfolio.example.com"
		s.LinkedIn = "https://linkedin.com/in/sam"
		s.GitHub = "https://github.com/sam"
		require.NoError(t, s.Validate())
	})

	t.Run("missing experience and file reported together", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.Experience = ""
		s.CV = nil
		ve := validator.Extract(s.Validate())
		require.NotNil(t, ve)
		assert.True(t, ve.Has("experience"))
		assert.True(t, ve.Has("file"))
	})

	t.Run("experience outside enum", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.Experience = "Decades"
		ve := validator.Extract(s.Validate())
		require.NotNil(t, ve)
		assert.True(t, ve.Has("experience"))
	})

	t.Run("relative portfolio url", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.Portfolio = "/my-work"
		ve := validator.Extract(s.Validate())
		require.NotNil(t, ve)
		assert.True(t, ve.Has("portfolio"))
	})
}

func TestCareersSubmission_ValidateCV(t *testing.T) {
	t.Parallel()

	t.Run("unsupported media type regardless of size", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.CV.ContentType = "text/plain"
		s.CV.Size = 10
		ve := validator.Extract(s.Validate())
		require.NotNil(t, ve)
		assert.Contains(t, ve.Get("file"), "unsupported file type")
	})

	t.Run("size boundary is inclusive", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.CV.Size = forms.MaxCVSizeBytes
		require.NoError(t, s.Validate())

		s.CV.Size = forms.MaxCVSizeBytes + 1
		ve := validator.Extract(s.Validate())
		require.NotNil(t, ve)
		assert.Contains(t, ve.Get("file"), "file too large")
	})

	t.Run("docx accepted", func(t *testing.T) {
		t.Parallel()

		s := validCareers()
		s.CV.ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
		require.NoError(t, s.Validate())
	})
}
