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

package errors

type (
	tagDescription struct {
		description string
	}

	// TagKey objects are used for applying tags and finding tags/values in
	// errors. See NewTagKey.
	TagKey *tagDescription

	// TagValue represents a (tag, value) to be used with Annotator.Tag, or
	// may be applied to an error directly with the Apply method.
	TagValue struct {
		Key   TagKey
		Value any
	}

	// TagValueGenerator generates (TagKey, value) pairs, for use with
	// Annotator.Tag and New.
	TagValueGenerator interface {
		GenerateErrorTagValue() (key TagKey, value any)
	}
)

// NewTagKey creates a new TagKey.
func NewTagKey(description string) TagKey {
	return &tagDescription{description}
}

// GenerateErrorTagValue implements TagValueGenerator.
func (t TagValue) GenerateErrorTagValue() (TagKey, any) { return t.Key, t.Value }

// Apply applies this tag value directly to the error. This is a shortcut for
// `errors.Annotate(err, "").Tag(t).Err()`.
func (t TagValue) Apply(err error) error {
	return Annotate(err, "").Tag(t).Err()
}

// TagValueIn retrieves the value associated with `t` from the first tagged
// error in err's chain, and whether it was present.
func TagValueIn(t TagKey, err error) (value any, ok bool) {
	Walk(err, func(err error) bool {
		if ae, isAE := err.(*annotatedError); isAE {
			if value, ok = ae.tags[t]; ok {
				return false
			}
		}
		return true
	})
	return
}

// BoolTag is a tag which is either present on an error or not.
type BoolTag struct {
	Key TagKey
}

// NewBoolTag creates a new BoolTag.
func NewBoolTag(description string) BoolTag {
	return BoolTag{NewTagKey(description)}
}

// GenerateErrorTagValue implements TagValueGenerator.
func (b BoolTag) GenerateErrorTagValue() (TagKey, any) { return b.Key, true }

// Apply tags err with this tag.
func (b BoolTag) Apply(err error) error {
	return Annotate(err, "").Tag(b).Err()
}

// In returns true if err carries this tag with a true value.
func (b BoolTag) In(err error) bool {
	v, ok := TagValueIn(b.Key, err)
	if !ok {
		return false
	}
	set, _ := v.(bool)
	return set
}
