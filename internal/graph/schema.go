// Package graph defines the GraphQL schema and resolvers. Execution is
// delegated to graph-gophers/graphql-go; resolvers are thin wrappers over the
// service layer re-exposed as typed field methods.
package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the SDL served by the API. Parent-side author/post fields are
// nullable so a dangling reference degrades to null instead of an error.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	users(query: String): [User!]!
	posts(query: String): [Post!]!
	comments: [Comment!]!
}

type Mutation {
	createUser(data: CreateUserInput!): User!
	updateUser(id: ID!, data: UpdateUserInput!): User!
	deleteUser(id: ID!): User!
	createPost(data: CreatePostInput!): Post!
	updatePost(id: ID!, data: UpdatePostInput!): Post!
	deletePost(id: ID!): Post!
	createComment(data: CreateCommentInput!): Comment!
	updateComment(id: ID!, data: UpdateCommentInput!): Comment!
	deleteComment(id: ID!): Comment!
}

type User {
	id: ID!
	name: String!
	email: String!
	age: Int
	posts: [Post!]!
	comments: [Comment!]!
}

type Post {
	id: ID!
	title: String!
	body: String!
	published: Boolean!
	author: User
	comments: [Comment!]!
}

type Comment {
	id: ID!
	text: String!
	author: User
	post: Post
}

input CreateUserInput {
	name: String!
	email: String!
	age: Int
}

input UpdateUserInput {
	name: String
	email: String
	age: Int
}

input CreatePostInput {
	title: String!
	body: String!
	published: Boolean!
	author: ID!
}

input UpdatePostInput {
	title: String
	body: String
	published: Boolean
}

input CreateCommentInput {
	text: String!
	author: ID!
	post: ID!
}

input UpdateCommentInput {
	text: String
}
`

// ParseSchema parses the SDL against the resolver root. MaxParallelism(1)
// keeps field execution sequential, matching the store's one-writer model.
func ParseSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.MaxParallelism(1))
}
