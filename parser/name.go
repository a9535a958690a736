// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines label and namespace validation operations.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MaxLabelSize            = 20
	MaxPublicNamespaceSize  = 4
	MaxPrivateNamespaceSize = 16

	// ReservedNamespace is the name of the native currency and can never be
	// claimed, regardless of namespace class.
	ReservedNamespace = "spc"

	Delimiter          = "."
	ByteDelimiter byte = '.'
)

var (
	ErrInvalidLabel      = errors.New("labels must be lowercase alphanumeric with non-adjacent inner hyphens")
	ErrInvalidNamespace  = errors.New("namespaces must be lowercase alphanumeric with non-adjacent inner hyphens")
	ErrReservedNamespace = errors.New("namespace is reserved")

	reg *regexp.Regexp
)

func init() {
	// non-empty, [a-z0-9-], no leading/trailing hyphen, no adjacent hyphens
	reg = regexp.MustCompile("^[a-z0-9]+(-[a-z0-9]+)*$")
}

// CheckLabel returns an error if the label format is invalid.
func CheckLabel(label string) error {
	if len(label) > MaxLabelSize || !reg.MatchString(label) {
		return ErrInvalidLabel
	}
	return nil
}

// CheckNamespace returns an error if the namespace format is invalid. The
// length bound differs between namespace classes, so the caller supplies it.
func CheckNamespace(namespace string, maxSize int) error {
	if namespace == ReservedNamespace {
		return ErrReservedNamespace
	}
	if len(namespace) > maxSize || !reg.MatchString(namespace) {
		return ErrInvalidNamespace
	}
	return nil
}

// ResolveName splits a full name into label and namespace at the last
// delimiter, scanning from the right. A name without a delimiter is a bare
// label in the special namespace (returned as an empty namespace).
//
// Because the scan is from the right, "foo.bar.baz" resolves to label
// "foo.bar" in namespace "baz". Such a label can never pass CheckLabel, so
// lookups for it miss, but the resolution itself is observable behavior and
// must not change.
func ResolveName(name string) (label string, namespace string) {
	idx := strings.LastIndex(name, Delimiter)
	if idx == -1 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
