package logs

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Record represents a single entry in the server's log feed.
// Field names mirror the backend API response.
type Record struct {
	Datetime string `json:"datetime"`
	Level    string `json:"level"`
	Filename string `json:"filename"`
	Lineno   int    `json:"lineno"`
	Module   string `json:"module"`
	Message  string `json:"message"`
	RawLog   string `json:"raw_log"`
}

// Line grammar of the backend log files:
//
//	2024-08-13T17:09:01 [INFO|trailers.py|L42]: TrailersDownloader: Download complete
var (
	lineRegex   = regexp.MustCompile(`^(?P<datetime>\S+)\s\[(?P<level>[^|]+)\|(?P<filename>[^|]+)\|L(?P<lineno>\d+)\]:\s(?P<message>.*)$`)
	moduleRegex = regexp.MustCompile(`^(?P<module>\w+):\s(?P<message>.*)$`)
)

const fallbackModule = "Other"

// Parse converts a raw log line into a Record. Lines that do not match
// the backend grammar become an INFO record carrying the line verbatim.
func Parse(line string) Record {
	match := lineRegex.FindStringSubmatch(line)
	if match == nil {
		return Record{
			Datetime: time.Now().UTC().Format(time.RFC3339),
			Level:    "INFO",
			Filename: fallbackModule,
			Lineno:   1,
			Module:   fallbackModule,
			Message:  line,
			RawLog:   line,
		}
	}

	module := fallbackModule
	message := match[lineRegex.SubexpIndex("message")]

	if strings.HasPrefix(strings.ToLower(message), "job") {
		module = "Tasks"
	}

	if sub := moduleRegex.FindStringSubmatch(message); sub != nil {
		module = sub[moduleRegex.SubexpIndex("module")]
		message = sub[moduleRegex.SubexpIndex("message")]
	}

	lineno, _ := strconv.Atoi(match[lineRegex.SubexpIndex("lineno")])

	return Record{
		Datetime: match[lineRegex.SubexpIndex("datetime")],
		Level:    match[lineRegex.SubexpIndex("level")],
		Filename: match[lineRegex.SubexpIndex("filename")],
		Lineno:   lineno,
		Module:   module,
		Message:  message,
		RawLog:   line,
	}
}
