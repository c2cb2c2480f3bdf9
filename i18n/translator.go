package i18n

import "strings"

// Translator retrieves localized report lines by message code.
// data fills {placeholders} in the message (for example "from" or "to").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Message codes used by diff reports and CLI verdicts.
const (
	ReportHeader         = "report.header"
	ReportClassification = "report.classification"
	ReportAdded          = "report.added"
	ReportRemoved        = "report.removed"
	ReportTypeChanges    = "report.type_changes"
	ReportNewRequired    = "report.new_required"
	ReportIdentity       = "report.identity"
	ReportNoChanges      = "report.no_changes"
	CompatPass           = "compat.pass"
	CompatFail           = "compat.fail"
	BumpCreated          = "bump.created"
	BumpManualSteps      = "bump.manual_steps"
	BumpStepEdit         = "bump.step_edit"
	BumpStepFixture      = "bump.step_fixture"
	BumpStepDiff         = "bump.step_diff"
	BumpStepCompat       = "bump.step_compat"
	BumpStepNotify       = "bump.step_notify"
	SmokeOK              = "smoke.ok"
	SmokeMissingSchema   = "smoke.missing_schema"
	SmokeFailed          = "smoke.failed"
	ValidateOK           = "validate.ok"
	ValidateFailed       = "validate.failed"
)

var catalogs = map[string]map[string]string{
	"en": {
		ReportHeader:         "Schema diff: {from} → {to}",
		ReportClassification: "Classification: {classification}",
		ReportAdded:          "Added properties:",
		ReportRemoved:        "Removed properties:",
		ReportTypeChanges:    "Type changes:",
		ReportNewRequired:    "New required fields:",
		ReportIdentity:       "Identity relabel:",
		ReportNoChanges:      "No property-level changes detected.",
		CompatPass:           "✓ {from} fixtures are compatible with {to} schema",
		CompatFail:           "✗ BREAKING: {from} fixtures fail against {to} schema",
		BumpCreated:          "✓ Created {file}",
		BumpManualSteps:      "Manual steps:",
		BumpStepEdit:         "  1. Edit {file} with your schema changes",
		BumpStepFixture:      "  2. Create {fixture}",
		BumpStepDiff:         "  3. Run: contractkit diff {name} {from} {to}",
		BumpStepCompat:       "  4. Run: contractkit compat-check {name} {from} {to}",
		BumpStepNotify:       "  5. Notify downstream consumers of the new version",
		SmokeOK:              "Smoke OK: validated {count} fixtures.",
		SmokeMissingSchema:   "missing schema for fixture: {fixture}",
		SmokeFailed:          "{fixture} failed validation:",
		ValidateOK:           "✓ valid against {schema}",
		ValidateFailed:       "✗ invalid against {schema}",
	},
	"ja": {
		ReportHeader:         "スキーマ差分: {from} → {to}",
		ReportClassification: "分類: {classification}",
		ReportAdded:          "追加されたプロパティ:",
		ReportRemoved:        "削除されたプロパティ:",
		ReportTypeChanges:    "型の変更:",
		ReportNewRequired:    "新たに必須となったフィールド:",
		ReportIdentity:       "識別子の付け替え:",
		ReportNoChanges:      "プロパティレベルの変更はありません。",
		CompatPass:           "✓ {from} のフィクスチャは {to} スキーマと互換です",
		CompatFail:           "✗ 破壊的変更: {from} のフィクスチャは {to} スキーマで失敗します",
		BumpCreated:          "✓ {file} を作成しました",
		BumpManualSteps:      "手動で行う手順:",
		BumpStepEdit:         "  1. {file} にスキーマの変更を反映する",
		BumpStepFixture:      "  2. {fixture} を作成する",
		BumpStepDiff:         "  3. 実行: contractkit diff {name} {from} {to}",
		BumpStepCompat:       "  4. 実行: contractkit compat-check {name} {from} {to}",
		BumpStepNotify:       "  5. 下流の利用者に新しいバージョンを通知する",
		SmokeOK:              "スモーク OK: {count} 件のフィクスチャを検証しました。",
		SmokeMissingSchema:   "フィクスチャに対応するスキーマがありません: {fixture}",
		SmokeFailed:          "{fixture} の検証に失敗しました:",
		ValidateOK:           "✓ {schema} に適合しています",
		ValidateFailed:       "✗ {schema} に適合していません",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalogs[t.lang][code]
	if !ok {
		msg, ok = catalogs["en"][code]
	}
	if !ok {
		return code
	}
	return fill(msg, data)
}

func fill(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
