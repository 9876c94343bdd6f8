package driver

import (
	"github.com/swanandpatil9195/culit/internal/rewrite"
	"github.com/swanandpatil9195/culit/internal/token"
)

// Attribute-scoped expansion: only items annotated with #[<name>] are
// rewritten, mirroring how an attribute macro is applied. The attribute
// marker itself is consumed; its argument stream is handed to the rewriter,
// which rejects anything non-empty.

func expandAttributed(rw *rewrite.Rewriter, trees []token.Tree, name string) ([]token.Tree, error) {
	out := make([]token.Tree, 0, len(trees))
	i := 0
	for i < len(trees) {
		if m, ok := matchAttribute(trees, i, name); ok {
			expanded, err := rw.Expand(m.args, m.body)
			if err != nil {
				return nil, err
			}
			out = append(out, withLeading(expanded, m.leading)...)
			i = m.next
			continue
		}
		switch t := trees[i].(type) {
		case *token.Group:
			items, err := expandAttributed(rw, t.Items, name)
			if err != nil {
				return nil, err
			}
			out = append(out, &token.Group{
				Delim: t.Delim,
				Open:  t.Open,
				Close: t.Close,
				Items: items,
			})
		default:
			out = append(out, trees[i])
		}
		i++
	}
	return out, nil
}

type attrMatch struct {
	args    []token.Tree
	body    []token.Tree
	leading []token.Trivia // trivia of the consumed # token
	next    int
}

// matchAttribute recognizes `# [ <name> ... ]` at trees[i] and collects the
// annotated item: everything up to and including the first brace group or
// semicolon, or to the end of the stream.
func matchAttribute(trees []token.Tree, i int, name string) (attrMatch, bool) {
	if i+1 >= len(trees) {
		return attrMatch{}, false
	}
	pound, ok := trees[i].(token.Leaf)
	if !ok || pound.Tok.Kind != token.Pound {
		return attrMatch{}, false
	}
	group, ok := trees[i+1].(*token.Group)
	if !ok || group.Delim != token.Bracket || len(group.Items) == 0 {
		return attrMatch{}, false
	}
	head, ok := group.Items[0].(token.Leaf)
	if !ok || head.Tok.Kind != token.Ident || head.Tok.Text != name {
		return attrMatch{}, false
	}

	args := group.Items[1:]
	// #[name(...)] carries its arguments in a nested paren group.
	if len(args) == 1 {
		if paren, ok := args[0].(*token.Group); ok && paren.Delim == token.Paren {
			args = paren.Items
		}
	}

	body := make([]token.Tree, 0, 8)
	next := i + 2
	for next < len(trees) {
		tree := trees[next]
		body = append(body, tree)
		next++
		if g, ok := tree.(*token.Group); ok && g.Delim == token.Brace {
			break
		}
		if leaf, ok := tree.(token.Leaf); ok && leaf.Tok.Kind == token.Semicolon {
			break
		}
	}

	return attrMatch{
		args:    args,
		body:    body,
		leading: pound.Tok.Leading,
		next:    next,
	}, true
}

// withLeading prepends trivia to the first token of the stream so the
// whitespace that preceded a consumed attribute survives re-emission.
func withLeading(trees []token.Tree, leading []token.Trivia) []token.Tree {
	if len(leading) == 0 || len(trees) == 0 {
		return trees
	}
	switch t := trees[0].(type) {
	case token.Leaf:
		tok := t.Tok
		tok.Leading = append(append([]token.Trivia{}, leading...), tok.Leading...)
		trees[0] = token.Leaf{Tok: tok}
	case *token.Group:
		open := t.Open
		open.Leading = append(append([]token.Trivia{}, leading...), open.Leading...)
		trees[0] = &token.Group{Delim: t.Delim, Open: open, Close: t.Close, Items: t.Items}
	}
	return trees
}
