// Package render draws resolved card placements onto a PDF page.
//
// Drawing goes through the Canvas interface so the card geometry and the
// password fitting loop can be tested without producing a PDF. The only
// production Canvas is the gopdf-backed PDF type, which carries the three
// embedded Go faces used on cards: "normal", "bold" and "mono".
package render
