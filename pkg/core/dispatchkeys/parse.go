// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dispatchkeys

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseKey parses the name of a valid dispatch key (case-insensitive). E.g.: "CPU", "autograd".
//
// Undefined and NumDispatchKeys are rejected, since they can't be members of a Set.
func ParseKey(name string) (DispatchKey, error) {
	name = strings.TrimSpace(name)
	key, err := DispatchKeyString(name)
	if err != nil {
		return Undefined, errors.Errorf("unknown dispatch key %q, valid keys are %s", name, Full())
	}
	if !key.IsValid() {
		return Undefined, errors.Errorf("dispatch key %q can't be used as a member of a set", name)
	}
	return key, nil
}

// ParseSet parses a comma-separated list of key names (see ParseKey). E.g.: "CPU,Autograd".
//
// Empty entries are ignored, so "" returns the empty set.
func ParseSet(list string) (s Set, err error) {
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		var key DispatchKey
		key, err = ParseKey(name)
		if err != nil {
			return Set{}, errors.WithMessagef(err, "while parsing dispatch key set %q", list)
		}
		s = s.Add(key)
	}
	return s, nil
}

// ParseNames converts a list of key names to a Set. See ParseKey.
func ParseNames(names []string) (s Set, err error) {
	for _, name := range names {
		var key DispatchKey
		key, err = ParseKey(name)
		if err != nil {
			return Set{}, err
		}
		s = s.Add(key)
	}
	return s, nil
}

// Names returns the names of the keys in the set, in increasing order of priority.
func (s Set) Names() []string {
	names := make([]string, 0, s.Len())
	for key := range s.Keys() {
		names = append(names, key.String())
	}
	return names
}
