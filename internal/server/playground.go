package server

import "github.com/gofiber/fiber/v2"

// playgroundHTML is a minimal GraphiQL page pointed at /graphql.
const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
	<title>blogql playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.css" />
</head>
<body style="margin:0;">
	<div id="graphiql" style="height:100vh;"></div>
	<script src="https://cdn.jsdelivr.net/npm/react@18/umd/react.production.min.js"></script>
	<script src="https://cdn.jsdelivr.net/npm/react-dom@18/umd/react-dom.production.min.js"></script>
	<script src="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
		ReactDOM.createRoot(document.getElementById('graphiql')).render(
			React.createElement(GraphiQL, { fetcher: fetcher })
		);
	</script>
</body>
</html>`

// Playground serves the GraphiQL page.
func (s *Server) Playground(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}
