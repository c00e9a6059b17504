package ruleengine

import "testing"

func TestActivityCategory(t *testing.T) {
	cat, ok := ActivityCategory("6201-5")
	if !ok || cat != "TECHNOLOGY" {
		t.Errorf("ActivityCategory(6201-5) = (%s, %v), want (TECHNOLOGY, true)", cat, ok)
	}
	if _, ok := ActivityCategory("0000-0"); ok {
		t.Error("unmapped CNAE code should report ok=false")
	}
}

func TestIsServiceCategory(t *testing.T) {
	if !IsServiceCategory("TECHNOLOGY") {
		t.Error("TECHNOLOGY should be a service category")
	}
	if IsServiceCategory("CONSTRUCTION") {
		t.Error("CONSTRUCTION should not be a service category")
	}
}

func TestCategoriesIncompatible(t *testing.T) {
	if CategoriesIncompatible("CONSTRUCTION", "CONSTRUCTION") {
		t.Error("a category is never incompatible with itself")
	}
	if !CategoriesIncompatible("CONSTRUCTION", "TECHNOLOGY") {
		t.Error("CONSTRUCTION/TECHNOLOGY should be flagged incompatible")
	}
	if !CategoriesIncompatible("TECHNOLOGY", "CONSTRUCTION") {
		t.Error("incompatibility check should be symmetric")
	}
	if CategoriesIncompatible("CONSULTING", "EDUCATION") {
		t.Error("unlisted pairs should not be treated as incompatible")
	}
}

func TestInferContractObjectCategory(t *testing.T) {
	cat, ok := InferContractObjectCategory("Supply and installation of accounting software")
	if !ok || cat != "TECHNOLOGY" {
		t.Errorf("InferContractObjectCategory(software) = (%s, %v), want (TECHNOLOGY, true)", cat, ok)
	}
	if _, ok := InferContractObjectCategory("totally unrelated free text"); ok {
		t.Error("text with no matching keyword should report ok=false")
	}
}
