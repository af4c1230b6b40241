package file_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nakamasato/topicgraph/internal/file"
)

type TestStruct struct {
	Name string
	Age  int
}

func TestSaveObject(t *testing.T) {
	obj := TestStruct{Name: "Alice", Age: 30}
	outputFile := filepath.Join(t.TempDir(), "nested", "test_output.json")

	err := file.SaveObject(obj, outputFile)
	if err != nil {
		t.Fatalf("SaveObject failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Expected file %s to exist: %v", outputFile, err)
	}
	want := "{\n  \"Name\": \"Alice\",\n  \"Age\": 30\n}\n"
	if string(data) != want {
		t.Fatalf("Expected %q, got %q", want, string(data))
	}

	entries, err := os.ReadDir(filepath.Dir(outputFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected only the output file, found %d entries", len(entries))
	}
}

func TestSaveObjectOverwrites(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "test_output.json")
	if err := os.WriteFile(outputFile, []byte("old content that is longer than the new one"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := file.SaveObject(TestStruct{Name: "Bob"}, outputFile); err != nil {
		t.Fatalf("SaveObject failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	var got TestStruct
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Expected valid JSON, got %q: %v", string(data), err)
	}
	if got.Name != "Bob" {
		t.Fatalf("Expected Bob, got %v", got)
	}
}

func TestSaveObjectMarshalFailureKeepsPreviousFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "test_output.json")
	if err := os.WriteFile(outputFile, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := file.SaveObject(make(chan int), outputFile); err == nil {
		t.Fatal("Expected an error for an unmarshalable object")
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "previous" {
		t.Fatalf("Expected previous content to survive, got %q", string(data))
	}
}
