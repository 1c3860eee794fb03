package worker

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/triviaflag/internal/model"
)

// lengthEvaluator flags records whose text contains a digit
type lengthEvaluator struct {
	delay time.Duration
}

func (e *lengthEvaluator) Evaluate(rec *model.Record) model.Evaluation {
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
	if rec.Text == "panic" {
		panic("evaluator blew up")
	}
	flags := model.EmptyFlags()
	flags.HasNumericalValue = strings.ContainsAny(rec.Text, "0123456789")
	flags.HasNumber = flags.HasNumericalValue
	return model.Evaluation{Record: rec, Flags: flags}
}

func makeRecords(texts ...string) []*model.Record {
	recs := make([]*model.Record, len(texts))
	for i, text := range texts {
		recs[i] = &model.Record{ID: strconv.Itoa(i), Text: text}
	}
	return recs
}

func TestBatchProcessor_ProcessRecords(t *testing.T) {
	processor := NewBatchProcessor(&lengthEvaluator{}, 3, nil)
	records := makeRecords("in 1928", "no digits", "route 66", "", "XIV")

	evals, err := processor.ProcessRecords(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(evals) != len(records) {
		t.Fatalf("expected %d evaluations, got %d", len(records), len(evals))
	}

	want := []bool{true, false, true, false, false}
	for i, e := range evals {
		if e.Record != records[i] {
			t.Errorf("evaluation %d belongs to record %s", i, e.Record.ID)
		}
		if e.Flags.HasNumber != want[i] {
			t.Errorf("record %d: expected HasNumber=%v, got %v", i, want[i], e.Flags.HasNumber)
		}
	}
}

func TestBatchProcessor_OrderIndependentOfWorkers(t *testing.T) {
	texts := make([]string, 200)
	for i := range texts {
		texts[i] = "question " + strconv.Itoa(i)
		if i%3 == 0 {
			texts[i] = "no number here"
		}
	}
	records := makeRecords(texts...)

	single, err := NewBatchProcessor(&lengthEvaluator{}, 1, nil).ProcessRecords(context.Background(), records)
	if err != nil {
		t.Fatal(err)
	}
	many, err := NewBatchProcessor(&lengthEvaluator{}, 8, nil).ProcessRecords(context.Background(), records)
	if err != nil {
		t.Fatal(err)
	}

	for i := range records {
		if single[i].Record.ID != many[i].Record.ID || single[i].Flags.HasNumber != many[i].Flags.HasNumber {
			t.Fatalf("record %d differs between 1 and 8 workers", i)
		}
	}
}

func TestBatchProcessor_PanicIsolated(t *testing.T) {
	processor := NewBatchProcessor(&lengthEvaluator{}, 2, nil)
	records := makeRecords("year 1066", "panic", "7 wonders")

	evals, err := processor.ProcessRecords(context.Background(), records)
	if err != nil {
		t.Fatalf("a failing record must not abort the batch: %v", err)
	}

	if !evals[0].Flags.HasNumber || !evals[2].Flags.HasNumber {
		t.Error("healthy records should still be evaluated")
	}
	if evals[1].Flags.HasNumber || len(evals[1].Warnings) != 1 {
		t.Errorf("panicking record should have empty flags and one warning, got %+v", evals[1])
	}
	if evals[1].Flags.RomanNumerals == nil {
		t.Error("lists must be non-nil for a failed record")
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	evals, err := NewBatchProcessor(&lengthEvaluator{}, 2, nil).ProcessRecords(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(evals) != 0 {
		t.Errorf("expected no evaluations, got %d", len(evals))
	}
}

func TestBatchProcessor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&lengthEvaluator{delay: 5 * time.Millisecond}, 1, nil)
	texts := make([]string, 100)
	_, err := processor.ProcessRecords(ctx, makeRecords(texts...))
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBatchProcessor_Progress(t *testing.T) {
	var buf bytes.Buffer
	processor := NewBatchProcessor(&lengthEvaluator{}, 2, &buf)

	if _, err := processor.ProcessRecords(context.Background(), makeRecords("a", "b", "c")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "evaluated: 3/3 done") {
		t.Errorf("expected final progress line, got %q", out)
	}
}

func TestProgress_Throttled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, "records", 100, time.Hour)

	for i := 0; i < 100; i++ {
		p.Tick()
	}

	if p.Done() != 100 {
		t.Errorf("expected 100 done, got %d", p.Done())
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 1 {
		t.Errorf("expected a single progress line within the interval, got %d", lines)
	}
}
