// Package dto contains request payload types for the HTTP API.
//
// DTOs isolate the wire format from the domain model: handlers bind and
// validate a DTO, then translate it into the domain input type before
// calling a use case. Gin's binding tags cover presence checks only;
// semantic rules (trimming, taxonomy membership) stay in the domain.
package dto
