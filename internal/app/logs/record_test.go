package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Record
	}{
		{
			name: "structured line with module prefix",
			line: "2024-08-13T17:09:01 [INFO|download.py|L42]: TrailersDownloader: download complete",
			expected: Record{
				Datetime: "2024-08-13T17:09:01",
				Level:    "INFO",
				Filename: "download.py",
				Lineno:   42,
				Module:   "TrailersDownloader",
				Message:  "download complete",
				RawLog:   "2024-08-13T17:09:01 [INFO|download.py|L42]: TrailersDownloader: download complete",
			},
		},
		{
			name: "structured line without module prefix",
			line: "2024-08-13T17:09:01 [ERROR|tasks.py|L7]: disk full",
			expected: Record{
				Datetime: "2024-08-13T17:09:01",
				Level:    "ERROR",
				Filename: "tasks.py",
				Lineno:   7,
				Module:   "Other",
				Message:  "disk full",
				RawLog:   "2024-08-13T17:09:01 [ERROR|tasks.py|L7]: disk full",
			},
		},
		{
			name: "job lines attributed to Tasks",
			line: "2024-08-13T17:09:01 [INFO|scheduler.py|L12]: Job 'refresh' executed",
			expected: Record{
				Datetime: "2024-08-13T17:09:01",
				Level:    "INFO",
				Filename: "scheduler.py",
				Lineno:   12,
				Module:   "Tasks",
				Message:  "Job 'refresh' executed",
				RawLog:   "2024-08-13T17:09:01 [INFO|scheduler.py|L12]: Job 'refresh' executed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.line))
		})
	}
}

func Test_Parse_UnstructuredLine(t *testing.T) {
	record := Parse("plain text without grammar")

	assert.Equal(t, "INFO", record.Level)
	assert.Equal(t, "Other", record.Module)
	assert.Equal(t, "Other", record.Filename)
	assert.Equal(t, 1, record.Lineno)
	assert.Equal(t, "plain text without grammar", record.Message)
	assert.Equal(t, "plain text without grammar", record.RawLog)
	assert.NotEmpty(t, record.Datetime)
}

func Test_Parse_ModulePrefixOverridesJobDetection(t *testing.T) {
	record := Parse("2024-08-13T17:09:01 [INFO|s.py|L3]: JobRunner: job started")

	assert.Equal(t, "JobRunner", record.Module)
	assert.Equal(t, "job started", record.Message)
}
