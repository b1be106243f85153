// Package domain contains the core business entities for partsbin:
// component records, inventory statistics, and the domain error taxonomy.
// It has no dependencies on other packages in this module.
package domain
