package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gurukul/backend/models"
)

func TestValidateStructReportsJSONNames(t *testing.T) {
	fields := ValidateStruct(models.CreateCourseInput{Slug: "intro"})
	assert.Equal(t, "This field is required", fields["title"])
	assert.Equal(t, "This field is required", fields["price"])
	assert.NotContains(t, fields, "Title")
}

func TestValidateStructOneof(t *testing.T) {
	fields := ValidateStruct(models.CreateResourceInput{
		BatchID: 1,
		Type:    "spreadsheet",
		Title:   "Worksheet",
	})
	assert.Equal(t, "Must be one of: pdf notes assignment", fields["type"])
}

func TestValidateStructURL(t *testing.T) {
	fields := ValidateStruct(models.CreateSubmissionInput{
		ResourceID: 1,
		FileURL:    "not a url",
	})
	assert.Equal(t, "Must be a valid URL", fields["fileUrl"])
}

func TestValidateStructPasses(t *testing.T) {
	fields := ValidateStruct(models.CreateCourseInput{
		Title: "Intro",
		Slug:  "intro",
		Price: "999.00",
	})
	assert.Nil(t, fields)
}
