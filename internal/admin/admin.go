// Copyright (c) 2026 Lelemenu. All rights reserved.
// Author: jacky.yuan.dev@gmail.com

/*
Package admin implements the read-only admin allow-list.

Admins are managed directly in the document store by operators: the document
id is the display name and the body holds the email. The API only lists the
entries and answers allow-list membership checks for the access gate.
*/
package admin

// Admin represents one entry of the allow-list. Name is the document id.
type Admin struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
