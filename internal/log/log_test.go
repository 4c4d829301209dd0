package log

import "testing"

func TestInitAndHelpers(t *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}

		if GetSugaredLogger() == nil {
			t.Fatal("nil logger after Init")
		}

		Debugw("debug", "k", 1)
		Infow("info", "k", 2)
		Warnw("warn", "k", 3)
		Errorw("error", "k", 4)
		Sync()
	}
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	logger = nil

	if GetSugaredLogger() == nil {
		t.Fatal("fallback logger is nil")
	}
}
