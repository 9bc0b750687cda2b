package standards

import (
	"regexp"
	"strings"

	"rwescore/domain/tabular"
)

// icd10Pattern matches the shape of an ICD-10 code (letter except U, two
// digits, optional dotted extension). Shape only; no codebook lookup.
var icd10Pattern = regexp.MustCompile(`^[A-TV-Z][0-9]{2}(\.[0-9A-Za-z]{1,4})?$`)

// iso2Countries is the two-letter country code set accepted by the
// country-share heuristic.
var iso2Countries = map[string]bool{}

func init() {
	codes := "US GB DE FR IT ES CA AU BR IN CN JP KR NL SE CH DK NO FI PL PT IE AT BE CZ HU RO GR IL MX ZA AR CL CO NZ SG AE SA QA KW BH"
	for _, c := range strings.Fields(codes) {
		iso2Countries[c] = true
	}
}

// conditionColumns are the diagnosis-like columns scanned for ICD-10 shaped
// values, in priority order.
var conditionColumns = []string{"Condition", "diagnosis", "icd10", "icd_10", "icd_code"}

// ICD10Share returns the fraction of cell values matching the ICD-10 code
// shape. Semicolon-separated lists are exploded into individual values.
func ICD10Share(cells []tabular.Cell) float64 {
	total, matched := 0, 0
	for _, cell := range cells {
		s, ok := cell.String()
		if !ok {
			continue
		}
		for _, part := range strings.Split(s, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			total++
			if icd10Pattern.MatchString(part) {
				matched++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// CountryShare returns the fraction of cell values that are valid
// two-letter ISO country codes.
func CountryShare(cells []tabular.Cell) float64 {
	total, matched := 0, 0
	for _, cell := range cells {
		s, ok := cell.String()
		if !ok {
			continue
		}
		total++
		if iso2Countries[strings.ToUpper(s)] {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// VocabularyFormatScore blends code-shape signals across a dataset:
// 0.7 for the best ICD-10 share over diagnosis-like columns and 0.3 for the
// ISO country-code share, capped at 1. A readiness signal, not a full OMOP
// vocabulary mapping.
func VocabularyFormatScore(ds tabular.Dataset) float64 {
	icdShare := 0.0
	for _, col := range conditionColumns {
		if !ds.HasColumn(col) {
			continue
		}
		if share := ICD10Share(ds.Column(col)); share > icdShare {
			icdShare = share
		}
	}
	isoShare := 0.0
	if ds.HasColumn("occurcountry") {
		isoShare = CountryShare(ds.Column("occurcountry"))
	}
	return capScore(0.7*icdShare + 0.3*isoShare)
}

func capScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
