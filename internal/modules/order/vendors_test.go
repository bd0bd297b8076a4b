package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractVendorIDs_DeduplicatesPreservingOrder(t *testing.T) {
	items := []LineItem{
		{VendorID: "V1"},
		{VendorID: "V1"},
		{VendorID: "V2"},
		{VendorID: "V1"},
	}
	require.Equal(t, []string{"V1", "V2"}, ExtractVendorIDs(items))
}

func TestExtractVendorIDs_DropsBlankIDs(t *testing.T) {
	items := []LineItem{
		{VendorID: ""},
		{VendorID: "   "},
		{VendorID: "\tV3 "},
		{ProductID: "p1"}, // no vendor id at all
	}
	require.Equal(t, []string{"V3"}, ExtractVendorIDs(items))
}

func TestExtractVendorIDs_EmptyInput(t *testing.T) {
	require.Empty(t, ExtractVendorIDs(nil))
	require.Empty(t, ExtractVendorIDs([]LineItem{}))
}
