// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Battle is the predicate function for battle builders.
type Battle func(*sql.Selector)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// EngineSetting is the predicate function for enginesetting builders.
type EngineSetting func(*sql.Selector)

// ModerationAction is the predicate function for moderationaction builders.
type ModerationAction func(*sql.Selector)

// MonitoringAlert is the predicate function for monitoringalert builders.
type MonitoringAlert func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// RateLimitCounter is the predicate function for ratelimitcounter builders.
type RateLimitCounter func(*sql.Selector)

// RateLimitViolation is the predicate function for ratelimitviolation builders.
type RateLimitViolation func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)
