package ruleengine

import (
	"strings"
	"testing"

	"supplierwatch/internal/domain"
)

// alertVocabulary and scoreVocabulary are the complete identifier sets each
// dimension is allowed to use. Neither may appear in the other's list: a
// shared vocabulary would be the first sign that the two dimensions have
// started to lean on each other instead of staying independent.
func alertVocabulary() []string {
	return []string{
		string(domain.AlertPartnerIsPublicServant),
		string(domain.AlertSanctionedSupplierStillContracting),
		string(domain.AlertTenderRotation),
		string(domain.AlertDonationToContractAwarder),
		string(domain.AlertPartnerSanctionedElsewhere),
		string(domain.AlertStrawman),
	}
}

func scoreVocabulary() []string {
	out := make([]string, 0, len(domain.IndicatorWeights))
	for kind := range domain.IndicatorWeights {
		out = append(out, string(kind))
	}
	return out
}

func TestAlertAndScoreVocabulariesAreDisjoint(t *testing.T) {
	alerts := alertVocabulary()
	indicators := scoreVocabulary()

	alertSet := make(map[string]bool, len(alerts))
	for _, a := range alerts {
		alertSet[a] = true
	}

	for _, ind := range indicators {
		if alertSet[ind] {
			t.Errorf("indicator kind %q also appears in the alert vocabulary", ind)
		}
	}

	indicatorSet := make(map[string]bool, len(indicators))
	for _, i := range indicators {
		indicatorSet[i] = true
	}
	for _, a := range alerts {
		if indicatorSet[a] {
			t.Errorf("alert kind %q also appears in the score vocabulary", a)
		}
	}
}

// TestDetectCriticalAlertsNeverReferencesScoreIndicators is a cheap guard
// against a future alert description accidentally quoting an indicator
// kind or band name that would blur the two dimensions together.
func TestDetectCriticalAlertsNeverReferencesScoreIndicators(t *testing.T) {
	supplier := domain.Supplier{ID: companyID(t)}
	hash := domain.PersonHash("partnerhash")
	ctx := AlertContext{
		Partners: []domain.Partner{{PersonHash: hash, Name: "Jane Doe", IsPublicServant: true}},
	}
	alerts := DetectCriticalAlerts(supplier, ctx)
	for _, a := range alerts {
		for _, band := range []string{string(domain.BandLow), string(domain.BandModerate), string(domain.BandHigh), string(domain.BandCritical)} {
			if strings.Contains(a.Description, band) || strings.Contains(a.Evidence, band) {
				t.Errorf("alert %s references score band %q", a.Kind, band)
			}
		}
		for kind := range domain.IndicatorWeights {
			if strings.Contains(a.Description, string(kind)) || strings.Contains(a.Evidence, string(kind)) {
				t.Errorf("alert %s references score indicator %q", a.Kind, kind)
			}
		}
	}
}

func companyID(t *testing.T) domain.CompanyID {
	t.Helper()
	id, err := domain.NewCompanyID("11234567000149")
	if err != nil {
		t.Fatalf("fixture company id invalid: %v", err)
	}
	return id
}
