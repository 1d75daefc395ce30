// Package domain holds the error vocabulary shared by every layer of the todo
// service: the sentinels that decide how a failure is reported and the
// field-level ValidationError. The todo entity itself lives in domain/todo.
package domain
