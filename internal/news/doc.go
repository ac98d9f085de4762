// Package news turns a changelog document into per-release content files for
// the site generator. Each release entry becomes one markdown file under the
// news section, prefixed with generated TOML front-matter and followed by the
// entry's body text verbatim.
package news
