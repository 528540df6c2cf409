// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors is a slim version of the LUCI errors library.
//
// Errors are annotated with a human readable reason and optional tags:
//
//	return errors.Annotate(err, "running %q", path).Tag(SpawnFailure).Err()
//
// Every error produced by this package supports errors.Is and errors.As on
// the errors it wraps.
package errors
