// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_normalizers

import (
	"context"
	"strings"
	"testing"
	"time"

	internal_lexicon "github.com/rapidaai/vnnorm/api/normalizer-api/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// Mock logger for testing
type mockLogger struct{}

func newMockLogger() *mockLogger {
	return &mockLogger{}
}

func (m *mockLogger) Level() zapcore.Level                         { return zapcore.DebugLevel }
func (m *mockLogger) Debug(args ...interface{})                    {}
func (m *mockLogger) Debugf(template string, args ...interface{})  {}
func (m *mockLogger) Info(args ...interface{})                     {}
func (m *mockLogger) Infof(template string, args ...interface{})   {}
func (m *mockLogger) Warn(args ...interface{})                     {}
func (m *mockLogger) Warnf(template string, args ...interface{})   {}
func (m *mockLogger) Error(args ...interface{})                    {}
func (m *mockLogger) Errorf(template string, args ...interface{})  {}
func (m *mockLogger) DPanic(args ...interface{})                   {}
func (m *mockLogger) DPanicf(template string, args ...interface{}) {}
func (m *mockLogger) Panic(args ...interface{})                    {}
func (m *mockLogger) Panicf(template string, args ...interface{})  {}
func (m *mockLogger) Fatal(args ...interface{})                    {}
func (m *mockLogger) Fatalf(template string, args ...interface{})  {}
func (m *mockLogger) Benchmark(functionName string, duration time.Duration) {
}
func (m *mockLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
}
func (m *mockLogger) Sync() error { return nil }

type stageCase struct {
	name     string
	input    string
	expected string
}

// squash collapses the padding entity stages leave around their output.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func defaultLexicon(t *testing.T) *internal_lexicon.Lexicon {
	t.Helper()
	lex, err := internal_lexicon.LoadDefault()
	require.NoError(t, err)
	return lex
}

func runStage(t *testing.T, n Normalizer, tests []stageCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, squash(n.Normalize(tt.input)))
		})
	}
}

// =============================================================================
// Cleanup Tests
// =============================================================================

func TestLexicalCleanupNormalizer(t *testing.T) {
	n := NewLexicalCleanupNormalizer(newMockLogger())

	tests := []stageCase{
		{name: "empty", input: "", expected: ""},
		{name: "newline becomes sentence break", input: "Xin chào\nbạn", expected: "Xin chào. bạn"},
		{name: "newline after punctuation", input: "Xin chào.\nbạn", expected: "Xin chào. bạn"},
		{name: "comma before capital gets space", input: "Hà Nội,Việt Nam", expected: "Hà Nội, Việt Nam"},
		{name: "grouped numeral untouched", input: "giá 1.000,5", expected: "giá 1.000,5"},
		{name: "clock colon kept", input: "lúc 9:30", expected: "lúc 9:30"},
		{name: "label colon becomes break", input: "Lưu ý: mang theo", expected: "Lưu ý. mang theo"},
		{name: "en dash between digits", input: "10–12", expected: "10-12"},
		{name: "domain kept whole", input: "vnexpress.net", expected: "vnexpress.net"},
		{name: "url kept for stripping", input: "xem https://vnexpress.net/abc nhé", expected: "xem https://vnexpress.net/abc nhé"},
		{name: "email kept for stripping", input: "liên hệ Lan.Anh@gmail.com nhé", expected: "liên hệ Lan.Anh@gmail.com nhé"},
		{name: "colon after link still splits", input: "Web: www.Abc.vn", expected: "Web. www.Abc.vn"},
		{name: "decimal word spelling", input: "hai phẩy năm", expected: "hai phảy năm"},
		{name: "star glyph", input: "5★", expected: "5*"},
	}
	runStage(t, n, tests)
}

func TestLexicalCleanupNormalizer_ComposesDiacritics(t *testing.T) {
	n := NewLexicalCleanupNormalizer(newMockLogger())
	// "ế" written as e + combining circumflex + combining acute
	decomposed := "bie\u0302\u0301t"
	assert.Equal(t, "bi\u1ebft", n.Normalize(decomposed))
}

func TestSpecialCharNormalizer(t *testing.T) {
	n := NewSpecialCharNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "hash blanked", input: "a#b", expected: "a b"},
		{name: "sentence punctuation kept", input: "xin chào!", expected: "xin chào!"},
		{name: "hyphen kept", input: "a-b", expected: "a-b"},
	}
	runStage(t, n, tests)
}

func TestWhitespaceNormalizer(t *testing.T) {
	n := NewWhitespaceNormalizer(newMockLogger())
	assert.Equal(t, "a b", n.Normalize("  a   b  "))
}

func TestPunctuationSpacingNormalizer(t *testing.T) {
	n := NewPunctuationSpacingNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "space after each mark", input: "xin chào.bạn?khỏe,không", expected: "xin chào. bạn? khỏe, không"},
		{name: "dot runs collapse", input: "a..b", expected: "a. b"},
	}
	runStage(t, n, tests)
}

func TestPostProcessNormalizer(t *testing.T) {
	n := NewPostProcessNormalizer(newMockLogger())
	assert.Equal(t, "a. b. c", n.Normalize(" a  . b .. c "))
	assert.Equal(t, "xin chào, bạn", n.Normalize("xin chào , bạn"))
}

// =============================================================================
// Lexicon Stage Tests
// =============================================================================

func TestAbbreviationNormalizer(t *testing.T) {
	n := NewAbbreviationNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "plain abbreviation", input: "UBND tỉnh", expected: "ủy ban nhân dân tỉnh"},
		{name: "dotted key", input: "TP.HCM", expected: "thành phố Hồ Chí Minh"},
		{name: "dotted key with inserted space", input: "TP. HCM", expected: "thành phố Hồ Chí Minh"},
		{name: "not inside a word", input: "TPX", expected: "TPX"},
		{name: "case sensitive", input: "ubnd", expected: "ubnd"},
	}
	runStage(t, n, tests)
}

func TestAbbreviationNormalizer_EmptyTable(t *testing.T) {
	lex := defaultLexicon(t)
	lex.Abbreviations = &internal_lexicon.Table{}
	n := NewAbbreviationNormalizer(newMockLogger(), lex)
	assert.Equal(t, "UBND", n.Normalize("UBND"))
}

func TestVerbatimNormalizer(t *testing.T) {
	n := NewVerbatimNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "chat shorthand", input: "ko biết", expected: "không biết"},
		{name: "slashed form", input: "v/v họp", expected: "về việc họp"},
		{name: "needs whitespace around", input: "kooo", expected: "kooo"},
	}
	runStage(t, n, tests)
}

func TestForeignNormalizer(t *testing.T) {
	n := NewForeignNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "ignores case", input: "Facebook", expected: "phây búc"},
		{name: "inside sentence", input: "xem facebook.", expected: "xem phây búc."},
		{name: "whole words only", input: "facebooker", expected: "facebooker"},
	}
	runStage(t, n, tests)
}

func TestMathSymbolNormalizer(t *testing.T) {
	n := NewMathSymbolNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "currency moves behind amount", input: "giá $5", expected: "giá năm đô la"},
		{name: "operators", input: "1 + 1 = 2", expected: "1 cộng 1 bằng 2"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Strip Tests
// =============================================================================

func TestStripNormalizer(t *testing.T) {
	n := NewStripNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "url", input: "xem https://vnexpress.net/abc ngay", expected: "xem ngay"},
		{name: "email", input: "gửi về abc@gmail.com nhé", expected: "gửi về nhé"},
		{name: "html", input: "<b>đậm</b>", expected: "đậm"},
		{name: "emoji", input: "vui 😀", expected: "vui"},
		{name: "special word", input: "Công nghệ AI mới", expected: "Công nghệ ây ai mới"},
		{name: "quotes", input: `"trích dẫn"`, expected: "trích dẫn"},
		{name: "decorative stars", input: "**quan trọng**", expected: "quan trọng"},
		{name: "rating star kept", input: "đánh giá 5*", expected: "đánh giá 5*"},
		{name: "parentheses kept", input: "(iv)", expected: "(iv)"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Entity Stage Tests
// =============================================================================

func TestPlateNormalizer(t *testing.T) {
	n := NewPlateNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "bare plate", input: "Biển số 29A-123.45", expected: "Biển số hai chín a một hai ba bốn năm"},
		{name: "prefixed tail only", input: "biển số xe 30E 12345", expected: "biển số xe 30E một hai ba bốn năm"},
		{name: "control plate prefix", input: "Biển kiểm soát 51F-12345", expected: "Biển kiểm soát 51F một hai ba bốn năm"},
		{name: "dot separator", input: "biển số 30A.12345", expected: "biển số 30A một hai ba bốn năm"},
		{name: "no plate", input: "năm 2023", expected: "năm 2023"},
	}
	runStage(t, n, tests)
}

func TestRatioNormalizer(t *testing.T) {
	n := NewRatioNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "ratio gate open", input: "tỉ lệ 1:18", expected: "tỉ lệ một mười tám"},
		{name: "gate closed", input: "lúc 1:18", expected: "lúc 1:18"},
	}
	runStage(t, n, tests)
}

func TestUnitNormalizer(t *testing.T) {
	n := NewUnitNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "glued unit", input: "nặng 5kg", expected: "nặng năm ki lô gam"},
		{name: "negative decimal", input: "-5,5 độ", expected: "âm năm phảy năm độ"},
		{name: "range", input: "3-5 km", expected: "ba đến năm ki lô mét"},
		{name: "longest unit wins", input: "60 km/h", expected: "sáu mươi ki lô mét trên giờ"},
		{name: "multiplier", input: "2 triệu usd", expected: "hai triệu đô la Mỹ"},
		{name: "percent", input: "50%", expected: "năm mươi phần trăm"},
		{name: "unit inside word", input: "3 lần", expected: "3 lần"},
	}
	runStage(t, n, tests)
}

func TestRateNormalizer(t *testing.T) {
	n := NewRateNormalizer(newMockLogger())
	assert.Equal(t, "đánh giá 5 sao", squash(n.Normalize("đánh giá 5*")))
	assert.Equal(t, "5*", n.Normalize("5*"))
}

func TestAddressNormalizer(t *testing.T) {
	n := NewAddressNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "alley", input: "ngõ 12/124", expected: "ngõ mười hai trên một trăm hai mươi bốn"},
		{name: "three levels", input: "hẻm 5/3/2 quận 1", expected: "hẻm năm trên ba trên hai quận 1"},
	}
	runStage(t, n, tests)
}

func TestFractionNormalizer(t *testing.T) {
	n := NewFractionNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "quantity keyword", input: "chiếm 1/3 dân số", expected: "chiếm một phần ba dân số"},
		{name: "looks like a date", input: "có 20/11", expected: "có 20/11"},
		{name: "measure", input: "1/2 thìa đường", expected: "một phần hai thìa đường"},
		{
			name:     "legal document",
			input:    "Nghị định 110/2013",
			expected: "Nghị định một trăm mười, năm hai nghìn không trăm mười ba",
		},
		{name: "per word", input: "10 trường hợp/100.000 dân", expected: "10 trường hợp trên 100.000 dân"},
	}
	runStage(t, n, tests)
}

func TestPhoneNormalizer(t *testing.T) {
	n := NewPhoneNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "mobile", input: "hotline 0912345678", expected: "hotline không chín một hai ba bốn năm sáu bảy tám"},
		{name: "dotted", input: "gọi 0912.345.678", expected: "gọi không chín một hai ba bốn năm sáu bảy tám"},
		{name: "no contact word", input: "năm 2023", expected: "năm 2023"},
	}
	runStage(t, n, tests)
}

func TestMultiplicationNormalizer(t *testing.T) {
	n := NewMultiplicationNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "spaced", input: "2 x 3", expected: "hai nhân ba"},
		{name: "three factors", input: "2x3x4", expected: "hai nhân ba nhân bốn"},
		{name: "not a product", input: "x3", expected: "x3"},
	}
	runStage(t, n, tests)
}

func TestSportScoreNormalizer(t *testing.T) {
	n := NewSportScoreNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "gate open", input: "Đội bóng thắng 2-1", expected: "Đội bóng thắng hai một"},
		{name: "colon score", input: "tỷ số 3:0", expected: "tỷ số ba không"},
		{name: "gate closed", input: "khoảng 2-1", expected: "khoảng 2-1"},
		{name: "season years", input: "mùa giải 2022-2023", expected: "mùa giải 2022-2023"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Date and Time Tests
// =============================================================================

func TestDateRangeNormalizer(t *testing.T) {
	n := NewDateRangeNormalizer(newMockLogger())
	tests := []stageCase{
		{
			name:     "year to year",
			input:    "2016-2017",
			expected: "năm hai nghìn không trăm mười sáu đến năm hai nghìn không trăm mười bảy",
		},
		{
			name:     "full date to full date",
			input:    "1/1/2020-5/1/2020",
			expected: "ngày một tháng một năm hai nghìn không trăm hai mươi đến ngày năm tháng một năm hai nghìn không trăm hai mươi",
		},
		{
			name:     "day month to full date",
			input:    "20/1-18/2/2019",
			expected: "ngày hai mươi tháng một đến ngày mười tám tháng hai năm hai nghìn không trăm mười chín",
		},
		{
			name:     "day to full date",
			input:    "15-18/6/2019",
			expected: "ngày mười lăm đến ngày mười tám tháng sáu năm hai nghìn không trăm mười chín",
		},
		{
			name:     "day month to day month",
			input:    "20/1-18/2",
			expected: "ngày hai mươi tháng một đến ngày mười tám tháng hai",
		},
		{
			name:     "day to day month",
			input:    "15-18/6",
			expected: "ngày mười lăm đến ngày mười tám tháng sáu",
		},
	}
	runStage(t, n, tests)
}

func TestDateNormalizer(t *testing.T) {
	n := NewDateNormalizer(newMockLogger())
	tests := []stageCase{
		{
			name:     "after ngày",
			input:    "ngày 21/11/2023",
			expected: "ngày ngày hai mươi mốt tháng mười một năm hai nghìn không trăm hai mươi ba",
		},
		{
			name:     "bare full date",
			input:    "21/11/2023",
			expected: "ngày hai mươi mốt tháng mười một năm hai nghìn không trăm hai mươi ba",
		},
		{
			name:     "month four reads tư",
			input:    "30/4/1975",
			expected: "ngày ba mươi tháng tư năm một nghìn chín trăm bảy mươi lăm",
		},
		{name: "keyword day month", input: "từ 21/11", expected: "từ ngày hai mươi mốt tháng mười một"},
		{name: "mùng with dash", input: "mùng 2-9", expected: "mùng ngày hai tháng chín"},
		{
			name:     "month year",
			input:    "vào 11/2023",
			expected: "vào tháng mười một năm hai nghìn không trăm hai mươi ba",
		},
		{name: "time of day", input: "sáng 5/6", expected: "sáng ngày năm tháng sáu"},
		{
			name:     "two dates joined by và",
			input:    "31/8 và 1/9",
			expected: "ngày ba mươi mốt tháng tám và ngày một tháng chín",
		},
		{
			name:     "bracketed date later in a ngày sentence",
			input:    "Ngày của cha (16/6)",
			expected: "Ngày của cha ( ngày mười sáu tháng sáu )",
		},
		{name: "quarter is not a month", input: "quý 3/2023", expected: "quý 3/2023"},
		{name: "dotted short year rejected", input: "bản 12.5.23", expected: "bản 12.5.23"},
		{name: "loose slash pair", input: "có 3/5", expected: "có 3/5"},
	}
	runStage(t, n, tests)
}

func TestTimeRangeNormalizer(t *testing.T) {
	n := NewTimeRangeNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "clock to clock", input: "8h30-10h", expected: "tám giờ ba mươi đến mười giờ"},
		{name: "hours", input: "9-10h", expected: "chín đến mười giờ"},
		{name: "midnight end", input: "22h-24h", expected: "hai mươi hai giờ đến hai mươi bốn giờ"},
		{
			name:     "invalid end read as numbers",
			input:    "từ 8h30-25h30",
			expected: "từ tám giờ ba mươi đến hai mươi lăm ba mươi",
		},
	}
	runStage(t, n, tests)
}

func TestTimeNormalizer(t *testing.T) {
	n := NewTimeNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "hour minute", input: "9h30", expected: "chín giờ ba mươi"},
		{name: "spoken minute", input: "9h30p", expected: "chín giờ ba mươi phút"},
		{name: "seconds", input: "14:05:09", expected: "mười bốn giờ năm phút chín giây"},
		{name: "hour only", input: "7h", expected: "bảy giờ"},
		{name: "zero minutes dropped", input: "10h00", expected: "mười giờ"},
		{name: "not a time", input: "25:30", expected: "25:30"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Number Tests
// =============================================================================

func TestNumberRangeNormalizer(t *testing.T) {
	n := NewNumberRangeNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "keyword", input: "khoảng 5-7 người", expected: "khoảng năm đến bảy người"},
		{name: "counted unit", input: "3-5 ngày", expected: "ba đến năm ngày"},
		{name: "no context", input: "mã 5-7", expected: "mã 5-7"},
	}
	runStage(t, n, tests)
}

func TestNumberRangeNormalizer_KeywordWithinClause(t *testing.T) {
	n := NewNumberRangeNormalizer(newMockLogger())
	far := "khoảng " + strings.Repeat("xa ", 30) + "5-7"
	assert.Equal(t, far, squash(n.Normalize(far)))

	near := "khoảng " + strings.Repeat("xa ", 10) + "5-7"
	assert.Equal(t, "khoảng "+strings.Repeat("xa ", 10)+"năm đến bảy", squash(n.Normalize(near)))
}

func TestClauseStages_LongUnpunctuatedInput(t *testing.T) {
	text := strings.Repeat("ngày hôm nay có 5 người đến khoảng ", 4000)
	stages := []Normalizer{
		NewNumberRangeNormalizer(newMockLogger()),
		NewDateNormalizer(newMockLogger()),
	}
	start := time.Now()
	for _, n := range stages {
		assert.Equal(t, text, n.Normalize(text))
	}
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNegativeNormalizer(t *testing.T) {
	n := NewNegativeNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "standalone", input: "nhiệt độ -5 hôm nay", expected: "nhiệt độ âm năm hôm nay"},
		{name: "decimal before full stop", input: "-2,5.", expected: "âm hai phảy năm ."},
		{name: "hyphen between numbers", input: "3-5", expected: "3-5"},
	}
	runStage(t, n, tests)
}

func TestDashRangeNormalizer(t *testing.T) {
	n := NewDashRangeNormalizer(newMockLogger())
	assert.Equal(t, "trang 10 đến 12", squash(n.Normalize("trang 10-12")))
	assert.Equal(t, "a-b", n.Normalize("a-b"))
}

func TestNumberNormalizer(t *testing.T) {
	n := NewNumberNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "plain", input: "124", expected: "một trăm hai mươi bốn"},
		{name: "dot thousands", input: "2.300 người", expected: "hai nghìn ba trăm người"},
		{name: "comma decimal", input: "16,2", expected: "mười sáu phảy hai"},
		{name: "comma thousands", input: "1,000,000", expected: "một triệu"},
		{name: "version", input: "1.2.3", expected: "một chấm hai chấm ba"},
		{name: "mixed separators", input: "1.234,5", expected: "một nghìn hai trăm ba mươi bốn phảy năm"},
		{name: "no digits", input: "không có số", expected: "không có số"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Code Tests
// =============================================================================

func TestIDDigitsNormalizer(t *testing.T) {
	n := NewIDDigitsNormalizer(newMockLogger())
	tests := []stageCase{
		{
			name:     "account",
			input:    "số tài khoản 0123456789",
			expected: "số tài khoản không một hai ba bốn năm sáu bảy tám chín",
		},
		{name: "no label", input: "có 0123456789", expected: "có 0123456789"},
	}
	runStage(t, n, tests)
}

func TestYouthTeamNormalizer(t *testing.T) {
	n := NewYouthTeamNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "glued", input: "U23 Việt Nam", expected: "U hai mươi ba Việt Nam"},
		{name: "dashed", input: "U-19", expected: "U mười chín"},
	}
	runStage(t, n, tests)
}

func TestAlphanumericNormalizer(t *testing.T) {
	n := NewAlphanumericNormalizer(newMockLogger(), defaultLexicon(t))
	tests := []stageCase{
		{name: "letter then digits", input: "A10", expected: "a một không"},
		{name: "digit then letter", input: "mạng 4G", expected: "mạng bốn gờ"},
		{name: "letters only", input: "ABC", expected: "ABC"},
		{name: "digits only", input: "123", expected: "123"},
	}
	runStage(t, n, tests)
}

func TestRomanNormalizer(t *testing.T) {
	n := NewRomanNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "after keyword", input: "Chương IV", expected: "Chương bốn"},
		{name: "century", input: "thế kỷ XX", expected: "thế kỷ hai mươi"},
		{name: "heading", input: "II. Nội dung", expected: "hai . Nội dung"},
		{name: "heading after a sentence", input: "Kết thúc. III. Phụ lục", expected: "Kết thúc. ba . Phụ lục"},
		{name: "bracketed upper", input: "(IV)", expected: "( bốn )"},
		{name: "initial before a surname", input: "ông V. Putin", expected: "ông V. Putin"},
		{name: "initials after a comma", input: "vitamin C, X. Y", expected: "vitamin C, X. Y"},
		{name: "bracketed lower", input: "(iv)", expected: "( bốn )"},
		{name: "ordinary words", input: "tu vi", expected: "tu vi"},
		{name: "invalid numeral", input: "Chương IIII", expected: "Chương IIII"},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Casing Tests
// =============================================================================

func TestDuplicateNormalizer(t *testing.T) {
	n := NewDuplicateNormalizer(newMockLogger())
	tests := []stageCase{
		{name: "ngày ngày", input: "ngày ngày hai", expected: "ngày hai"},
		{name: "mùng ngày", input: "mùng ngày 2", expected: "mùng 2"},
		{name: "tháng tháng", input: "tháng tháng mười", expected: "tháng mười"},
		{name: "case sensitive", input: "Ngày ngày hai", expected: "Ngày ngày hai"},
		{name: "empty", input: "   ", expected: ""},
	}
	runStage(t, n, tests)
}

func TestSentenceCaseNormalizer(t *testing.T) {
	n := NewSentenceCaseNormalizer(newMockLogger())
	tests := []stageCase{
		{
			name:     "every sentence",
			input:    "xin chào. bạn khỏe không? tôi khỏe",
			expected: "Xin chào. Bạn khỏe không? Tôi khỏe",
		},
		{name: "vietnamese letter", input: "đi thôi", expected: "Đi thôi"},
		{name: "empty", input: "", expected: ""},
	}
	runStage(t, n, tests)
}

// =============================================================================
// Stage Contract Tests
// =============================================================================

func TestNormalizers_LeaveUnrelatedTextAlone(t *testing.T) {
	lex := defaultLexicon(t)
	logger := newMockLogger()
	stages := map[string]Normalizer{
		"plate":          NewPlateNormalizer(logger, lex),
		"ratio":          NewRatioNormalizer(logger),
		"unit":           NewUnitNormalizer(logger, lex),
		"address":        NewAddressNormalizer(logger),
		"fraction":       NewFractionNormalizer(logger),
		"phone":          NewPhoneNormalizer(logger),
		"multiplication": NewMultiplicationNormalizer(logger),
		"sport_score":    NewSportScoreNormalizer(logger),
		"date_range":     NewDateRangeNormalizer(logger),
		"date":           NewDateNormalizer(logger),
		"time_range":     NewTimeRangeNormalizer(logger),
		"time":           NewTimeNormalizer(logger),
		"number_range":   NewNumberRangeNormalizer(logger),
		"id_digits":      NewIDDigitsNormalizer(logger),
		"youth_team":     NewYouthTeamNormalizer(logger),
		"roman":          NewRomanNormalizer(logger),
		"alphanumeric":   NewAlphanumericNormalizer(logger, lex),
		"negative":       NewNegativeNormalizer(logger),
		"dash_range":     NewDashRangeNormalizer(logger),
		"number":         NewNumberNormalizer(logger),
	}
	text := "Hôm nay trời đẹp và mọi người đều vui vẻ"
	for name, n := range stages {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, text, n.Normalize(text))
		})
	}
}
