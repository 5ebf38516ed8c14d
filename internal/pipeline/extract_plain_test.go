package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"textclean/internal"
)

func texts(records []internal.RawRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Text
	}
	return out
}

func TestSelectRawTextWithHeader(t *testing.T) {
	rows := [][]string{
		{"id", "raw_text"},
		{"1", "Airlines"},
		{"2"},
		{"3", "analytic model", "extra"},
		{"4", ""},
		{"5", " "},
	}
	records := SelectRawText(rows)
	if diff := cmp.Diff([]string{"Airlines", "nan", "analytic model", "nan", " "}, texts(records)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if records[0].LineNo != 1 || records[2].LineNo != 3 {
		t.Fatalf("line numbers: %+v", records)
	}
}

func TestSelectRawTextHeaderless(t *testing.T) {
	rows := [][]string{
		{"Airlines"},
		{"Ad-Hoc Queries", "ignored"},
	}
	records := SelectRawText(rows)
	if diff := cmp.Diff([]string{"Airlines", "Ad-Hoc Queries"}, texts(records)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectRawTextHeaderIsExact(t *testing.T) {
	records := SelectRawText([][]string{{"Raw_Text"}, {"x"}})
	if len(records) != 2 || records[0].Text != "Raw_Text" {
		t.Fatalf("records=%+v", records)
	}
}

func TestSelectRawTextEmpty(t *testing.T) {
	if records := SelectRawText(nil); len(records) != 0 {
		t.Fatalf("len=%d", len(records))
	}
	if records := SelectRawText([][]string{{"raw_text"}}); len(records) != 0 {
		t.Fatalf("header only len=%d", len(records))
	}
}

func TestParseDelimited(t *testing.T) {
	content := []byte("\xef\xbb\xbfraw_text\n\"Airline, Companies\"\n\nanalytic \"model\"\nAirlines\n")
	rows, err := ParseRows(internal.FormatDelimited, content)
	if err != nil {
		t.Fatal(err)
	}
	records := SelectRawText(rows)
	want := []string{"Airline, Companies", `analytic "model"`, "Airlines"}
	if diff := cmp.Diff(want, texts(records)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDelimitedHeaderless(t *testing.T) {
	rows, err := ParseRows(internal.FormatDelimited, []byte("Airlines\nAd Hoc Queries\n"))
	if err != nil {
		t.Fatal(err)
	}
	records := SelectRawText(rows)
	if diff := cmp.Diff([]string{"Airlines", "Ad Hoc Queries"}, texts(records)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDelimitedEmptyFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "header empty field", content: "id,raw_text\n1,\n2,Airlines\n", want: []string{"nan", "Airlines"}},
		{name: "header short row", content: "id,raw_text\n1\n", want: []string{"nan"}},
		{name: "header quoted empty", content: "id,raw_text\n1,\"\"\n", want: []string{"nan"}},
		{name: "headerless quoted empty", content: "Airlines\n\"\"\nzebra\n", want: []string{"Airlines", "nan", "zebra"}},
		{name: "headerless empty first cell", content: "Airlines\n,x\n", want: []string{"Airlines", "nan"}},
		{name: "punctuation is text", content: "raw_text\n?!\n", want: []string{"?!"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := ParseRows(internal.FormatDelimited, []byte(tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, texts(SelectRawText(rows))); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTSV(t *testing.T) {
	rows, err := ParseRows(internal.FormatTSV, []byte("n\traw_text\n1\tAirlines, Inc\n"))
	if err != nil {
		t.Fatal(err)
	}
	records := SelectRawText(rows)
	if len(records) != 1 || records[0].Text != "Airlines, Inc" {
		t.Fatalf("records=%+v", records)
	}
}

func TestParseEmail(t *testing.T) {
	raw := "From: sender@example.com\r\n" +
		"To: team@example.com\r\n" +
		"Subject: labels\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"raw_text\r\n" +
		"Airlines\r\n" +
		"\r\n" +
		"Analytic Model\r\n"
	rows, err := ParseRows(internal.FormatEmail, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	records := SelectRawText(rows)
	if diff := cmp.Diff([]string{"Airlines", "Analytic Model"}, texts(records)); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRowsUnsupported(t *testing.T) {
	if _, err := ParseRows(internal.InputFormat("docx"), nil); err == nil {
		t.Fatal("expected error")
	}
}
