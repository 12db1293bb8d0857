/*
Package domain contains the vocabulary shared by the tape and the machine registry.

It is kept free of I/O and of any registry state so that adapters (CLI,
metrics) can depend on it without pulling in the registry.

# Key Types

  - Direction: head movement of a transition (Left, Right, Stay).
  - LookupError / SymbolError: typed wrappers around the error taxonomy
    (ErrTypeMismatch, ErrMalformedIdentifier, ErrOutOfRange, ErrNotFound,
    ErrDuplicateInitial, ErrInvalidSymbol).
  - RegistryEvent / RegistryHooks: notifications emitted after a registry mutation.
*/
package domain
