package ggfid

import (
	"reflect"
	"testing"
)

func Test_revComp(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"revComp a 4bp overhang",
			args{
				seq: "GGAG",
			},
			"CTCC",
		},
		{
			"revComp accepts lowercase",
			args{
				seq: "aatg",
			},
			"CATT",
		},
		{
			"revComp a palindrome to itself",
			args{
				seq: "GATC",
			},
			"GATC",
		},
		{
			"revComp is an involution",
			args{
				seq: revComp("TTAC"),
			},
			"TTAC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revComp(tt.args.seq); got != tt.want {
				t.Errorf("revComp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_selfComplementary(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want bool
	}{
		{"AATT is palindromic", "AATT", true},
		{"GATC is palindromic", "GATC", true},
		{"gatc is palindromic after canonicalization", "gatc", true},
		{"GGAG is not", "GGAG", false},
		{"AATG is not", "AATG", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selfComplementary(tt.seq); got != tt.want {
				t.Errorf("selfComplementary(%s) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func Test_canonicalAll(t *testing.T) {
	got := canonicalAll([]string{"ggag", " AATG ", "GcTt"})
	want := []string{"GGAG", "AATG", "GCTT"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("canonicalAll() = %v, want %v", got, want)
	}
}
