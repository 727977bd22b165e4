// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging for the demonstration programs. It supplies
// a human-readable CLI logger for interactive runs and a structured JSON
// trace logger for machine-consumed output, both behind one Logger interface.
package logger
