// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.csv")
	data := []byte("Index,Name\n1,allow-web\n")

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "export", "nested", "test.csv")

	if err := AtomicWriteFile(path, []byte("test data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.csv")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}

func TestAtomicWriteFile_NoTempFilesLeft(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.csv")

	if err := AtomicWriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestAtomicWriteFile_TargetIsDirectory(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "out.csv")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	if err := AtomicWriteFile(target, []byte("data"), 0644); err == nil {
		t.Fatal("expected error when target is a directory")
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temp file was not cleaned up, found %d entries", len(entries))
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunesNoEllipsis(t *testing.T) {
	tests := []struct {
		input    string
		maxRunes int
		want     string
	}{
		{"2024-03-01T10:15:30.123Z", 19, "2024-03-01T10:15:30"},
		{"2024-03-01", 19, "2024-03-01"},
		{"", 19, ""},
		{"日本語テキスト", 3, "日本語"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		got := TruncateRunesNoEllipsis(tt.input, tt.maxRunes)
		if got != tt.want {
			t.Errorf("TruncateRunesNoEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"日本", 4},
		{"", 0},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight(ab, 4) = %q", got)
	}
	if got := PadRight("日本", 5); got != "日本 " {
		t.Errorf("PadRight(日本, 5) = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Errorf("PadRight(toolong, 3) = %q", got)
	}
}
