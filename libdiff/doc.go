// Package libdiff computes structural differences between documents.
//
// [Diff] returns a list of [Change]s which, applied in order by [Apply],
// turn one document into the other. Object keys and array elements are
// aligned with a sequence diff so that an element inserted into the
// middle of an array is reported as one insertion rather than a change
// to every later element.
//
// Array paths in a change refer to the array as it is when that change
// is applied: after a deletion at [2], the next element is also at [2].
//
// [Reverse] inverts a change list and [ToJSONPatch] expresses one as an
// RFC 6902 JSON Patch document.
package libdiff
