package application

import (
	"path/filepath"
	"reflect"
	"testing"

	"msgmerge/internal/domain"
	"msgmerge/internal/infrastructure/storage"
	"msgmerge/internal/ports/input"
)

func newTestStatusService(t *testing.T, storeContent string) *StatusService {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "messages.json")
	mustWriteFile(t, storePath, storeContent)
	return NewStatusService(storage.NewFileRepository(), storePath)
}

func TestReportCoverage(t *testing.T) {
	svc := newTestStatusService(t, `{
  "en": {"a": "Apple", "b": "Step {num}", "c": "Cherry", "d": "Date"},
  "ja": {"a": "りんご", "b": "ステップ {num}", "e": "余分"}
}`)

	report, err := svc.Report("en")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.BaseLocale != "en" || report.BaseKeys != 4 {
		t.Fatalf("report header = %+v", report)
	}
	if len(report.Locales) != 2 {
		t.Fatalf("locales = %d, want 2", len(report.Locales))
	}

	en := findLocale(t, report, "en")
	if en.Missing != 0 || en.Extra != 0 || en.Completion != 100 {
		t.Fatalf("en status = %+v", en)
	}

	ja := findLocale(t, report, "ja")
	if ja.Keys != 3 {
		t.Fatalf("ja keys = %d", ja.Keys)
	}
	if !reflect.DeepEqual(ja.MissingKeys, []string{"c", "d"}) {
		t.Fatalf("ja missing = %v", ja.MissingKeys)
	}
	if !reflect.DeepEqual(ja.ExtraKeys, []string{"e"}) {
		t.Fatalf("ja extra = %v", ja.ExtraKeys)
	}
	if ja.Completion != 50 {
		t.Fatalf("ja completion = %v, want 50", ja.Completion)
	}
}

func TestReportPlaceholderMismatch(t *testing.T) {
	svc := newTestStatusService(t, `{
  "en": {"step": "Step {num} of {total}"},
  "ja": {"step": "ステップ {num}"}
}`)

	report, err := svc.Report("en")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	ja := findLocale(t, report, "ja")
	if !reflect.DeepEqual(ja.PlaceholderMismatches, []string{"step"}) {
		t.Fatalf("mismatches = %v, want [step]", ja.PlaceholderMismatches)
	}
}

func TestReportMissingBaseLocale(t *testing.T) {
	svc := newTestStatusService(t, `{"ja": {}}`)

	_, err := svc.Report("en")
	if !domain.IsMissingLocale(err) {
		t.Fatalf("err = %v, want MissingLocaleError", err)
	}
}

func findLocale(t *testing.T, report *input.StoreStatus, locale string) input.LocaleStatus {
	t.Helper()
	for _, ls := range report.Locales {
		if ls.Locale == locale {
			return ls
		}
	}
	t.Fatalf("locale %s not in report", locale)
	return input.LocaleStatus{}
}
