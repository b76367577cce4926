package bigcommerce

const moneyFragment = `
  fragment money on Money {
    value
    currencyCode
  }
`

const productFragment = `
  fragment product on Product {
    id
    entityId
    name
    path
    description
    plainTextDescription
    brand {
      name
    }
    availabilityV2 {
      status
    }
    seo {
      pageTitle
      metaDescription
    }
    prices {
      priceRange {
        min {
          ...money
        }
        max {
          ...money
        }
      }
    }
    images(first: 50) {
      edges {
        node {
          urlOriginal
          altText
          isDefault
        }
      }
    }
    productOptions(first: 25) {
      edges {
        node {
          entityId
          displayName
          ... on MultipleChoiceOption {
            values(first: 50) {
              edges {
                node {
                  label
                }
              }
            }
          }
        }
      }
    }
    variants(first: 250) {
      edges {
        node {
          id
          entityId
          isPurchasable
          options(first: 25) {
            edges {
              node {
                displayName
                values(first: 1) {
                  edges {
                    node {
                      label
                    }
                  }
                }
              }
            }
          }
          prices {
            price {
              ...money
            }
            retailPrice {
              ...money
            }
          }
        }
      }
    }
  }
` + moneyFragment

const categoryFragment = `
  fragment category on Category {
    entityId
    name
    path
    description
    seo {
      pageTitle
      metaDescription
    }
  }
`

const cartFragment = `
  fragment cart on Cart {
    id
    checkoutUrl
    cost {
      subtotalAmount {
        amount
        currencyCode
      }
      totalAmount {
        amount
        currencyCode
      }
      totalTaxAmount {
        amount
        currencyCode
      }
    }
    lines(first: 100) {
      edges {
        node {
          id
          quantity
          cost {
            amountPerQuantity {
              amount
              currencyCode
            }
            totalAmount {
              amount
              currencyCode
            }
          }
          merchandise {
            id
            title
            selectedOptions {
              name
              value
            }
            product {
              id
              handle
              title
              featuredImage {
                url
                altText
                width
                height
              }
            }
          }
        }
      }
    }
    totalQuantity
  }
`

const getProductQuery = `
  query getProduct($path: String!) {
    site {
      route(path: $path) {
        node {
          __typename
          ... on Product {
            ...product
          }
        }
      }
    }
  }
` + productFragment

const getProductsQuery = `
  query getProducts($searchTerm: String, $sort: SearchProductsSortInput = FEATURED) {
    site {
      search {
        searchProducts(filters: { searchTerm: $searchTerm }, sort: $sort) {
          products(first: 100) {
            edges {
              node {
                ...product
              }
            }
          }
        }
      }
    }
  }
` + productFragment

const getProductRecommendationsQuery = `
  query getProductRecommendations($productId: Int!) {
    site {
      product(entityId: $productId) {
        relatedProducts(first: 12) {
          edges {
            node {
              ...product
            }
          }
        }
      }
    }
  }
` + productFragment

const getCollectionQuery = `
  query getCollection($path: String!) {
    site {
      route(path: $path) {
        node {
          __typename
          ... on Category {
            ...category
          }
        }
      }
    }
  }
` + categoryFragment

const getCollectionsQuery = `
  query getCollections {
    site {
      categoryTree {
        entityId
        name
        path
        description
        children {
          entityId
          name
          path
          description
          children {
            entityId
            name
            path
            description
          }
        }
      }
    }
  }
`

const getCollectionProductsQuery = `
  query getCollectionProducts(
    $path: String!
    $first: Int = 100
    $sortBy: CategoryProductSort = DEFAULT
  ) {
    site {
      route(path: $path) {
        node {
          __typename
          ... on Category {
            products(first: $first, sortBy: $sortBy) {
              pageInfo {
                startCursor
                endCursor
              }
              edges {
                cursor
                node {
                  ...product
                }
              }
            }
          }
        }
      }
    }
  }
` + productFragment

const getMenuQuery = `
  query getMenu {
    site {
      categoryTree {
        entityId
        name
        path
      }
    }
  }
`

const pageFragment = `
  fragment page on WebPage {
    entityId
    name
    path
    seo {
      pageTitle
      metaDescription
    }
    ... on NormalPage {
      htmlBody
      plainTextSummary
    }
  }
`

const getPageQuery = `
  query getPage($path: String!) {
    site {
      route(path: $path) {
        node {
          __typename
          ...page
        }
      }
    }
  }
` + pageFragment

const getPagesQuery = `
  query getPages {
    site {
      content {
        pages(first: 100) {
          edges {
            node {
              ...page
            }
          }
        }
      }
    }
  }
` + pageFragment

const getCartQuery = `
  query getCart($cartId: ID!) {
    cart(id: $cartId) {
      ...cart
    }
  }
` + cartFragment

const addToCartMutation = `
  mutation addToCart($cartId: ID!, $lines: [CartLineInput!]!) {
    cartLinesAdd(cartId: $cartId, lines: $lines) {
      cart {
        ...cart
      }
    }
  }
` + cartFragment

const removeFromCartMutation = `
  mutation removeFromCart($cartId: ID!, $lineIds: [ID!]!) {
    cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
      cart {
        ...cart
      }
    }
  }
` + cartFragment

const editCartItemsMutation = `
  mutation editCartItems($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
    cartLinesUpdate(cartId: $cartId, lines: $lines) {
      cart {
        ...cart
      }
    }
  }
` + cartFragment

const createCartPath = "/api/storefront/carts"
