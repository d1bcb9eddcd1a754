package main

import (
	"bytes"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	app := makeApp(logger, logrus.NewEntry(logger))

	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{appName}, args...))
	return out.String(), err
}

func TestAncestorCommand(t *testing.T) {
	specs := []struct {
		pairs  string
		target string
		want   string
	}{
		{"1:3,2:3,3:5,5:8", "8", "1"},
		{"1:2", "2", "1"},
		{"1:2", "99", "-1"},
	}

	for _, spec := range specs {
		out, err := runApp(t, "ancestor", "--pairs", spec.pairs, "--target", spec.target)
		if err != nil {
			t.Fatalf("ancestor %s -> %s failed: %v", spec.pairs, spec.target, err)
		}
		if got := strings.TrimSpace(out); got != spec.want {
			t.Errorf("ancestor %s -> %s: got %q, want %q", spec.pairs, spec.target, got, spec.want)
		}
	}
}

func TestAncestorCommandWithMalformedPairs(t *testing.T) {
	if _, err := runApp(t, "ancestor", "--pairs", "1:2,oops", "--target", "2"); err == nil {
		t.Fatal("expected an error for malformed pairs")
	}
}

func TestSocialCommand(t *testing.T) {
	out, err := runApp(t, "--log-level", "debug", "social", "--users", "10", "--avg", "2", "--seed", "7")
	if err != nil {
		t.Fatalf("social command failed: %v", err)
	}

	for _, want := range []string{"Friendships:", "Extended network of user 1:", "  1: [1]\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q; got:\n%s", want, out)
		}
	}
}

func TestSocialCommandWithUnknownUser(t *testing.T) {
	if _, err := runApp(t, "social", "--users", "3", "--avg", "1", "--user", "4"); err == nil {
		t.Fatal("expected an error for an unknown user")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := runApp(t, "--log-level", "loud", "ancestor", "--pairs", "1:2", "--target", "2"); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
}
