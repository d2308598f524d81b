// Package domain contains the core entities of the banking backend:
// users, bank accounts and ledger transaction records, together with
// their validation rules and sentinel errors. The package has no
// dependencies on storage, transport or framework code.
package domain
