// Package storeintel extracts structured business intelligence from
// e-commerce websites that expose no stable API: product catalogs,
// store policies, FAQs, social presence, contact details, and brand
// narrative. Extractions for many sites can be run concurrently and
// compared against each other.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or
// responsibility (e.g., http/, goquery/, extract/).
package storeintel
