// Package auth provides authentication services: password hashing and
// verification with bcrypt, JWT issuance and validation, and the login
// flow that ties the two together.
package auth
