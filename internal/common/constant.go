package common

// AuthTokenCookieName is the cookie carrying the signed session token.
const AuthTokenCookieName = "AuthToken"
