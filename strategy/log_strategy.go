package strategy

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/honganasu06/ifc1/container"
	"github.com/honganasu06/ifc1/delta"
	"github.com/honganasu06/ifc1/errs"
	"github.com/honganasu06/ifc1/token"
)

var (
	logTimestampRE  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`)
	logSeverityRE   = regexp.MustCompile(`\b(WARNING|DEBUG|INFO|WARN|ERROR)\b`)
	logWhitespaceRE = regexp.MustCompile(`\s+`)
)

var severityCodes = map[string]int{
	"DEBUG":   0,
	"INFO":    1,
	"WARN":    2,
	"WARNING": 2,
	"ERROR":   3,
}

var severityNames = map[int]string{
	0: "DEBUG",
	1: "INFO",
	2: "WARN",
	3: "ERROR",
}

// LogStrategy implements timestamp-delta and severity-interned log line
// tokenization. Lines without a leading timestamp are preserved verbatim
// as RAW tokens.
type LogStrategy struct{}

func NewLogStrategy() *LogStrategy {
	return &LogStrategy{}
}

func (s *LogStrategy) ID() container.StrategyID { return container.LogStrategyID }
func (s *LogStrategy) Streaming() bool          { return false }

func (s *LogStrategy) DictMain() map[string]string            { return nil }
func (s *LogStrategy) DictCols() map[string]map[string]string { return nil }

type parsedLogLine struct {
	isRaw   bool
	raw     string
	sevCode int
	msg     string
}

func (s *LogStrategy) Tokenize(data []byte) ([]token.Token, error) {
	text := string(bytes.TrimSuffix(data, []byte("\n")))
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	parsed := make([]parsedLogLine, 0, len(lines))
	var timestamps []int64

	for _, line := range lines {
		loc := logTimestampRE.FindStringIndex(line)
		if loc == nil {
			parsed = append(parsed, parsedLogLine{isRaw: true, raw: line})
			continue
		}

		tsStr := line[loc[0]:loc[1]]
		rest := line[loc[1]:]

		layout := "2006-01-02 15:04:05"
		if strings.Contains(tsStr, "T") {
			layout = "2006-01-02T15:04:05"
		}
		ts, err := time.ParseInLocation(layout, tsStr, time.Local)
		if err != nil {
			parsed = append(parsed, parsedLogLine{isRaw: true, raw: line})
			continue
		}

		sevCode := token.SeverityUnknown
		msg := rest
		if m := logSeverityRE.FindStringSubmatchIndex(rest); m != nil {
			word := rest[m[2]:m[3]]
			sevCode = severityCodes[word]
			msg = rest[:m[2]] + rest[m[3]:]
		}
		msg = strings.TrimSpace(logWhitespaceRE.ReplaceAllString(msg, " "))

		timestamps = append(timestamps, ts.Unix())
		parsed = append(parsed, parsedLogLine{sevCode: sevCode, msg: msg})
	}

	deltas := delta.Encode(timestamps)

	var tokens []token.Token
	tsIdx := 0
	for _, p := range parsed {
		if p.isRaw {
			tokens = append(tokens, token.NewRaw(p.raw))
			continue
		}
		tokens = append(tokens, token.NewDelta(deltas[tsIdx]), token.NewSeverity(p.sevCode), token.NewMessage(p.msg))
		tsIdx++
	}

	return tokens, nil
}

func (s *LogStrategy) Reconstruct(keys []string, _ container.Metadata) ([]byte, error) {
	cur := newCursor(keys)

	var lines []string
	var running int64

	for cur.more() {
		key, _ := cur.next()

		if strings.HasPrefix(key, "RAW:") {
			lines = append(lines, key[len("RAW:"):])
			continue
		}

		d, err := token.ParseDeltaKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: expected delta or RAW, got %q", errs.ErrMalformedTokenStream, key)
		}
		running += d

		sevKey, ok := cur.next()
		if !ok || !strings.HasPrefix(sevKey, "SEV:") {
			return nil, fmt.Errorf("%w: expected SEV token after delta", errs.ErrMalformedTokenStream)
		}
		msgKey, ok := cur.next()
		if !ok || !strings.HasPrefix(msgKey, "MSG:") {
			return nil, fmt.Errorf("%w: expected MSG token after severity", errs.ErrMalformedTokenStream)
		}

		sevStr := sevKey[len("SEV:"):]
		var sevLabel string
		if sevStr == "UNKNOWN" {
			sevLabel = "UNKNOWN"
		} else {
			code, err := strconv.Atoi(sevStr)
			if err != nil {
				return nil, fmt.Errorf("%w: bad severity code %q", errs.ErrMalformedTokenStream, sevStr)
			}
			sevLabel = severityNames[code]
		}

		ts := time.Unix(running, 0).In(time.Local).Format("2006-01-02 15:04:05")
		msg := msgKey[len("MSG:"):]

		lines = append(lines, fmt.Sprintf("%s %s %s", ts, sevLabel, msg))
	}

	return []byte(strings.Join(lines, "\n")), nil
}
