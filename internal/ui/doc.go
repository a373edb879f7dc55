// Package ui renders command lifecycle events for humans through zap.
package ui
