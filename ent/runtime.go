// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/google/uuid"
	"github.com/ricotama/LAPORin/ent/report"
	"github.com/ricotama/LAPORin/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[1].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = reportDescTitle.Validators[0].(func(string) error)
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[2].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = reportDescDescription.Validators[0].(func(string) error)
	// reportDescAddress is the schema descriptor for address field.
	reportDescAddress := reportFields[6].Descriptor()
	// report.DefaultAddress holds the default value on creation for the address field.
	report.DefaultAddress = reportDescAddress.Default.(string)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
}
