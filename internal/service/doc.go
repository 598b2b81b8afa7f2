// Package service provides application-level services for managing athletes,
// categories, and training centers.
package service
