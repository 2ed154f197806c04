package config

import (
	"fmt"
	"strings"
)

// Issue is one problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError lists every issue found in a config, in discovery order.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	var b strings.Builder
	for i, issue := range err.Issues {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(issue.Field)
		b.WriteString(": ")
		b.WriteString(issue.Message)
	}
	return b.String()
}

// HasField reports whether any issue concerns field or one of its children.
func (err *ValidationError) HasField(field string) bool {
	for _, issue := range err.Issues {
		if issue.Field == field || strings.HasPrefix(issue.Field, field+".") || strings.HasPrefix(issue.Field, field+"[") {
			return true
		}
	}
	return false
}

type issueAdder func(field, format string, args ...any)

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, format string, args ...any) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
