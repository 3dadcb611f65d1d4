package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/arnorm"
	"github.com/npillmayer/arnorm/normalize"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		args  []string
		stdin string
		out   string
	}{
		{[]string{"--locale", "ar", "simplify", "مُحَمَّدٌ"}, "", "محمد\n"},
		{[]string{"--locale", "ar", "simplify"}, "ﻹسلام\n", "لاسلام\n"},
		{[]string{"--locale", "ar-EG", "unify", "مستشفى"}, "", "مستشفي\n"},
		{[]string{"--locale", "ar", "unify", "-y", "مستشفى"}, "", "مستشفي\n"},
		{[]string{"--locale", "ar", "unify", "مستشفى"}, "", "مستشفا\n"},
		{[]string{"--locale", "ar", "strip", "--keep-shadda", "مُحَمَّد"}, "", "محمّد\n"},
		{[]string{"--locale", "ar", "reduce"}, "وَاب", "واب\n"},
		{[]string{"--locale", "ar", "improve", "هذا", "  ,بيت"}, "", "هذا، بيت\n"},
		{[]string{"--locale", "ar", "lamalef", "ﻻ"}, "", "لا\n"},
		{[]string{"--locale", "ar", "tatweel", "هـــــانــــــي"}, "", "هاني\n"},
		{[]string{"--locale", "ar", "encode", "بَيتٌ"}, "", "d0b\nبيت\n"},
		{[]string{"--locale", "ar", "decode", "--code", "d0b", "بيت"}, "", "بَيتٌ\n"},
		{[]string{"--locale", "ar", "explain", "بـ"}, "", "U+0628\tBeh\nU+0640\tTatweel\n"},
		{[]string{"--locale", "ar", "pipe", "--steps", "tatweel,lamalef"}, "ﻻـ", "لا\n"},
	}
	for _, tt := range tests {
		var out strings.Builder
		if err := run(tt.args, strings.NewReader(tt.stdin), &out); err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if out.String() != tt.out {
			t.Errorf("%v: expected %+q, have %+q", tt.args, tt.out, out.String())
		}
	}
}

func TestCommandErrors(t *testing.T) {
	var out strings.Builder
	err := run([]string{"--locale", "ar", "pipe", "--steps", "fold,nonsense", "x"}, nil, &out)
	if !errors.Is(err, normalize.ErrUnknownStep) {
		t.Errorf("expected unknown step error, have %v", err)
	}
	err = run([]string{"--locale", "ar", "decode", "--code", "0", "بيت"}, nil, &out)
	if !errors.Is(err, arnorm.ErrInvalidArgument) {
		t.Errorf("expected invalid argument error, have %v", err)
	}
	if err = run([]string{"--trace", "verbose", "steps"}, nil, &out); err == nil {
		t.Errorf("expected illegal trace level to be rejected")
	}
}

func TestStepsCommand(t *testing.T) {
	var out strings.Builder
	if err := run([]string{"--locale", "ar", "steps"}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "simplify\n") {
		t.Errorf("expected step list to contain simplify, is %q", out.String())
	}
}
