// Package seosheet regenerates SEO copy for the rows of a spreadsheet.
// Each data row names a page URL, some provided content and optional
// keywords; the page is rendered and scraped, a language model writes a
// meta title, meta description and body, and the result is written back
// to the same row.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, gemini/, sheets/, sqlite/).
package seosheet
