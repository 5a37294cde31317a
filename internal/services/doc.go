// Package services loads game tables and trait translations for a set of locales.
package services
