// Package usertext renders untrusted user-submitted text as safe display
// markup.
//
// Translates posts and comments written in a small markdown-like syntax
// (bold, italic, strikethrough, superscript, links, unordered lists,
// blockquotes, indented code blocks) into HTML that can be inserted into a
// live page as-is. Every character of input is HTML-escaped before any
// formatting is applied, and link targets pass a scheme check that fails
// closed, so hostile input degrades to inert text instead of markup.
//
// The entire public surface is Render. It takes a string and returns
// template.HTML; there are no options, and behavior never varies between
// calls. Render is pure, which makes results cacheable on the input string
// alone. The memo subpackage provides such a cache.
//
// Output only ever contains p, strong, em, del, sup, a, ul, li, blockquote,
// br, pre and code elements, and the only attributes emitted are the safety
// attributes on anchors.
//
// If you're interested in rendering files from the command line, see
// cmd/usertext.
package usertext
