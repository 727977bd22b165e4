// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the demonstration settings from an optional JSON or
// YAML file, with the format detected from the file extension and defaults
// applied for anything the file leaves out.
package config
